package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Sale, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
}
