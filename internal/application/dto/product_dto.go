package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Si SKU viene vacío se genera a partir de categoría, marca y modelo.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"omitempty,len=16"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Category    string          `json:"category" validate:"required,min=1,max=100"`
	Brand       string          `json:"brand" validate:"required,min=1,max=100"`
	Model       string          `json:"model" validate:"max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int64           `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto. SKU y código de producto no se modifican aquí.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	SKU         string          `json:"sku"`
	ProductCode string          `json:"product_code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model,omitempty"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int64           `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
