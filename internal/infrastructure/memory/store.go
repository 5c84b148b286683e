// Package memory implementa los puertos de persistencia en memoria. Se usa con
// DB_DRIVER=memory (desarrollo local sin PostgreSQL) y en los tests de casos de uso.
// Replica las restricciones únicas del esquema SQL: (company_id, sku) y (company_id, product_code).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/catalogo-api/internal/application/sales"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Store datos compartidos por los repositorios en memoria.
type Store struct {
	mu       sync.RWMutex
	products map[string]entity.Product
	sales    map[string]entity.Sale

	txMu sync.Mutex // serializa transacciones
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]entity.Product),
		sales:    make(map[string]entity.Sale),
	}
}

type snapshot struct {
	products map[string]entity.Product
	sales    map[string]entity.Sale
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		products: make(map[string]entity.Product, len(s.products)),
		sales:    make(map[string]entity.Sale, len(s.sales)),
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.sales {
		snap.sales[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.sales = snap.sales
}

var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner emula una transacción: serializa y restaura el estado si fn falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunSale ejecuta fn con repositorios del almacén; si fn devuelve error o ctx se cancela se descartan sus cambios.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snap := r.s.snapshot()
	if err := fn(NewProductRepository(r.s), NewSaleRepository(r.s)); err != nil {
		r.s.restore(snap)
		return err
	}
	// Commit: una cancelación durante fn descarta los cambios igual que un Rollback.
	if err := ctx.Err(); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func sortNewestFirst[T any](items []T, created func(T) int64, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if ci != cj {
			return ci > cj
		}
		return id(items[i]) < id(items[j])
	})
}
