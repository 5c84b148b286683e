package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, company_id, product_id, sku, quantity, unit_price, subtotal, discount_percent, discount_amount, total, customer_name, sold_at, created_at`

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el repositorio. Pasar pool o tx.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la venta.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.CompanyID, s.ProductID, s.SKU, s.Quantity, s.UnitPrice, s.Subtotal,
		s.DiscountPercent, s.DiscountAmount, s.Total, s.CustomerName, s.SoldAt, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID; nil si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// ListByCompany lista ventas de la empresa, más recientes primero.
func (r *SaleRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+saleColumns+`
		FROM sales WHERE company_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CountByCompany cuenta las ventas de la empresa.
func (r *SaleRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM sales WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.ProductID, &s.SKU, &s.Quantity, &s.UnitPrice, &s.Subtotal,
		&s.DiscountPercent, &s.DiscountAmount, &s.Total, &s.CustomerName, &s.SoldAt, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
