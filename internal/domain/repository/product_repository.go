package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create y UpdateSKU devuelven domain.ErrDuplicate si el SKU o el código de producto ya existen en la empresa.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCompanyAndSKU(ctx context.Context, companyID, sku string) (*entity.Product, error)
	GetByCompanyAndProductCode(ctx context.Context, companyID, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateSKU(ctx context.Context, id, sku string) error
	// AdjustStock suma delta al stock; devuelve domain.ErrInsufficientStock si el resultado sería negativo.
	AdjustStock(ctx context.Context, id string, delta int64) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	Delete(ctx context.Context, id string) error
}
