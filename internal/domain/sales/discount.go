package sales

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Totals montos de una línea de venta, redondeados a 2 decimales.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal // porcentaje + monto fijo
	Total    decimal.Decimal
}

// CalculateTotals implementa el descuento de venta (servicio de dominio).
// Subtotal = Cantidad * PrecioUnitario; primero se aplica el porcentaje sobre el subtotal
// y luego el monto fijo. El total no puede quedar negativo.
func CalculateTotals(quantity int64, unitPrice, percent, amount decimal.Decimal) (Totals, error) {
	if quantity <= 0 {
		return Totals{}, fmt.Errorf("cantidad debe ser mayor a cero: %w", domain.ErrInvalidInput)
	}
	if unitPrice.IsNegative() {
		return Totals{}, fmt.Errorf("precio unitario negativo: %w", domain.ErrInvalidInput)
	}
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return Totals{}, fmt.Errorf("porcentaje de descuento fuera de [0, 100]: %w", domain.ErrInvalidInput)
	}
	if amount.IsNegative() {
		return Totals{}, fmt.Errorf("descuento fijo negativo: %w", domain.ErrInvalidInput)
	}

	subtotal := unitPrice.Mul(decimal.NewFromInt(quantity)).Round(2)
	discount := subtotal.Mul(percent).Div(hundred).Round(2).Add(amount.Round(2))
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		return Totals{}, fmt.Errorf("el descuento supera el subtotal: %w", domain.ErrInvalidInput)
	}
	return Totals{Subtotal: subtotal, Discount: discount, Total: total}, nil
}
