package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la venta de un producto con su descuento aplicado.
// Total = Subtotal - Subtotal*DiscountPercent/100 - DiscountAmount, nunca negativo.
type Sale struct {
	ID              string
	CompanyID       string
	ProductID       string
	SKU             string // copia del SKU al momento de la venta
	Quantity        int64
	UnitPrice       decimal.Decimal
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal // 0..100
	DiscountAmount  decimal.Decimal // descuento fijo adicional
	Total           decimal.Decimal
	CustomerName    string
	SoldAt          time.Time
	CreatedAt       time.Time
}
