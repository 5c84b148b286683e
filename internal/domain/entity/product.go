package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una empresa.
// SKU y ProductCode son únicos por empresa y no cambian después de creados (salvo RegenerateSKU).
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // CAT-MAR-MOD-NNNN
	ProductCode string // 8 caracteres hexadecimales
	Name        string
	Category    string
	Brand       string
	Model       string // vacío si el producto no tiene modelo (segmento GEN del SKU)
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
