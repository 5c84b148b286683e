package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el repositorio sobre el almacén.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

// Create inserta el producto; ErrDuplicate si el ID, SKU o código de producto ya existen.
func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	if r.conflictLocked(p.ID, p.CompanyID, p.SKU, p.ProductCode) {
		return domain.ErrDuplicate
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) conflictLocked(id, companyID, sku, code string) bool {
	for _, o := range r.s.products {
		if o.ID == id || o.CompanyID != companyID {
			continue
		}
		if o.SKU == sku || (code != "" && o.ProductCode == code) {
			return true
		}
	}
	return false
}

// GetByID obtiene un producto; nil si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByCompanyAndSKU obtiene un producto por empresa y SKU; nil si no existe.
func (r *ProductRepo) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.CompanyID == companyID && p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

// GetByCompanyAndProductCode obtiene un producto por empresa y código; nil si no existe.
func (r *ProductRepo) GetByCompanyAndProductCode(_ context.Context, companyID, code string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.CompanyID == companyID && p.ProductCode == code {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

// Update reemplaza los campos editables.
func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[p.ID]
	if !ok {
		return nil
	}
	cur.Name = p.Name
	cur.Description = p.Description
	cur.Price = p.Price
	cur.Cost = p.Cost
	cur.UpdatedAt = p.UpdatedAt
	r.s.products[p.ID] = cur
	return nil
}

// UpdateSKU cambia el SKU; ErrDuplicate si ya lo usa otro producto de la empresa.
func (r *ProductRepo) UpdateSKU(_ context.Context, id, sku string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if r.conflictLocked(id, cur.CompanyID, sku, "") {
		return domain.ErrDuplicate
	}
	cur.SKU = sku
	r.s.products[id] = cur
	return nil
}

// AdjustStock suma delta al stock sin dejarlo negativo.
func (r *ProductRepo) AdjustStock(_ context.Context, id string, delta int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Stock+delta < 0 {
		return fmt.Errorf("producto %s: %w", id, domain.ErrInsufficientStock)
	}
	cur.Stock += delta
	r.s.products[id] = cur
	return nil
}

// ListByCompany lista productos de la empresa, más recientes primero.
func (r *ProductRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.RLock()
	var all []*entity.Product
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			p := p
			all = append(all, &p)
		}
	}
	r.s.mu.RUnlock()
	sortNewestFirst(all,
		func(p *entity.Product) int64 { return p.CreatedAt.UnixNano() },
		func(p *entity.Product) string { return p.ID })
	return page(all, limit, offset), nil
}

// CountByCompany cuenta los productos de la empresa.
func (r *ProductRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n := 0
	for _, p := range r.s.products {
		if p.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

// Delete elimina un producto por ID; ErrConflict si tiene ventas registradas.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, s := range r.s.sales {
		if s.ProductID == id {
			return fmt.Errorf("producto %s tiene ventas: %w", id, domain.ErrConflict)
		}
	}
	delete(r.s.products, id)
	return nil
}
