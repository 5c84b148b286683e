package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationLockID clave de pg_advisory_lock para que dos instancias no migren a la vez.
const migrationLockID = 72_491_113

type migration struct {
	Version string // nombre del archivo sin extensión, ej. 0001_create_products
	SQL     string
}

// loadMigrations lee los .sql embebidos ordenados por nombre.
func loadMigrations(fsys fs.FS) ([]migration, error) {
	names, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	out := make([]migration, 0, len(names))
	for _, name := range names {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("leer %s: %w", name, err)
		}
		version := strings.TrimSuffix(strings.TrimPrefix(name, "migrations/"), ".sql")
		out = append(out, migration{Version: version, SQL: string(b)})
	}
	return out, nil
}

// pendingMigrations filtra las migraciones que no están en applied, conservando el orden.
func pendingMigrations(all []migration, applied map[string]bool) []migration {
	var out []migration
	for _, m := range all {
		if !applied[m.Version] {
			out = append(out, m)
		}
	}
	return out
}

// Migrate aplica las migraciones pendientes, cada una en su propia transacción, y devuelve
// las versiones aplicadas. Las ya registradas en schema_migrations se omiten.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	all, err := loadMigrations(migrationsFS)
	if err != nil {
		return nil, fmt.Errorf("migraciones: %w", err)
	}

	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("migraciones: adquirir conexión: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock($1)`, migrationLockID); err != nil {
		return nil, fmt.Errorf("migraciones: lock: %w", err)
	}
	defer func() { _, _ = conn.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, migrationLockID) }()

	if _, err := conn.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return nil, fmt.Errorf("migraciones: crear schema_migrations: %w", err)
	}

	rows, err := conn.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("migraciones: leer versiones: %w", err)
	}
	applied := make(map[string]bool)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return nil, fmt.Errorf("migraciones: scan: %w", err)
		}
		applied[v] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("migraciones: leer versiones: %w", err)
	}

	var done []string
	for _, m := range pendingMigrations(all, applied) {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return done, fmt.Errorf("migraciones: begin %s: %w", m.Version, err)
		}
		if _, err := tx.Exec(ctx, m.SQL); err != nil {
			_ = tx.Rollback(ctx)
			return done, fmt.Errorf("migraciones: aplicar %s: %w", m.Version, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version); err != nil {
			_ = tx.Rollback(ctx)
			return done, fmt.Errorf("migraciones: registrar %s: %w", m.Version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return done, fmt.Errorf("migraciones: commit %s: %w", m.Version, err)
		}
		done = append(done, m.Version)
	}
	return done, nil
}
