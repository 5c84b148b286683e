package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest entrada para registrar una venta con descuento opcional.
type RegisterSaleRequest struct {
	ProductID       string           `json:"product_id" validate:"required,uuid"`
	Quantity        int64            `json:"quantity" validate:"required,min=1"`
	UnitPrice       *decimal.Decimal `json:"unit_price"` // nil = precio del producto
	DiscountPercent decimal.Decimal  `json:"discount_percent" validate:"min=0,max=100"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount" validate:"min=0"`
	CustomerName    string           `json:"customer_name"`
	SoldAt          *time.Time       `json:"sold_at"` // nil = ahora
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	ProductID       string          `json:"product_id"`
	SKU             string          `json:"sku"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Total           decimal.Decimal `json:"total"`
	CustomerName    string          `json:"customer_name,omitempty"`
	SoldAt          time.Time       `json:"sold_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
