package memory

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria de SaleRepository.
type SaleRepo struct {
	s *Store
}

// NewSaleRepository construye el repositorio sobre el almacén.
func NewSaleRepository(s *Store) *SaleRepo {
	return &SaleRepo{s: s}
}

// Create inserta la venta.
func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sales[sale.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.sales[sale.ID] = *sale
	return nil
}

// GetByID obtiene una venta; nil si no existe.
func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	s, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// ListByCompany lista ventas por fecha de registro descendente, igual que el driver PostgreSQL.
func (r *SaleRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Sale, error) {
	r.s.mu.RLock()
	var all []*entity.Sale
	for _, s := range r.s.sales {
		if s.CompanyID == companyID {
			s := s
			all = append(all, &s)
		}
	}
	r.s.mu.RUnlock()
	sortNewestFirst(all,
		func(s *entity.Sale) int64 { return s.CreatedAt.UnixNano() },
		func(s *entity.Sale) string { return s.ID })
	return page(all, limit, offset), nil
}

// CountByCompany cuenta las ventas de la empresa.
func (r *SaleRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, s := range r.s.sales {
		if s.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}
