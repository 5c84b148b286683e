package sales

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de BD con repositorios atados a esa tx.
// Garantiza que el descuento de stock y el registro de la venta sean atómicos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
