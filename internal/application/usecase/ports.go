package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CodeGenerator genera SKUs y códigos de producto. Lo implementa *sku.Generator.
type CodeGenerator interface {
	SKU(category, brand, model string) (string, error)
	ProductCode() (string, error)
}

// CodeMetrics registra la emisión de códigos. Lo implementa *metrics.Metrics.
type CodeMetrics interface {
	SKUGenerated(generic bool)
	ProductCodeGenerated()
	CodeCollision(kind string)
}

// LabelPDFGenerator genera la hoja de etiquetas imprimibles de productos.
type LabelPDFGenerator interface {
	GenerateLabelsPDF(ctx context.Context, products []*entity.Product) ([]byte, error)
}

type noopMetrics struct{}

func (noopMetrics) SKUGenerated(bool)     {}
func (noopMetrics) ProductCodeGenerated() {}
func (noopMetrics) CodeCollision(string)  {}
