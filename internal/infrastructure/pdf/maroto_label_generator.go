// Package pdf genera las etiquetas imprimibles del catálogo.
//
// Cada etiqueta ocupa una fila de la hoja A4:
//
//	┌──────────────────────────────────────────────────────────┐
//	│  Nombre / Categoría · Marca │ Código 128 (SKU)   │  QR    │
//	│  Precio                     │ SKU en texto       │ código │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.LabelPDFGenerator = (*MarotoLabelGenerator)(nil)

// MarotoLabelGenerator implementa usecase.LabelPDFGenerator usando Maroto v2.
type MarotoLabelGenerator struct {
	author string
}

// NewMarotoLabelGenerator construye el generador. author se escribe en los metadatos del PDF.
func NewMarotoLabelGenerator(author string) *MarotoLabelGenerator {
	return &MarotoLabelGenerator{author: author}
}

// GenerateLabelsPDF genera una hoja con una etiqueta por producto y devuelve sus bytes.
func (g *MarotoLabelGenerator) GenerateLabelsPDF(ctx context.Context, products []*entity.Product) ([]byte, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("pdf: sin productos para etiquetar")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas de productos", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)
	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddRows(labelRows(p)...)
		m.AddRows(line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiquetas: %w", err)
	}
	return doc.GetBytes(), nil
}

func labelRows(p *entity.Product) []core.Row {
	return []core.Row{
		row.New(24).Add(
			col.New(5).Add(
				text.New(p.Name, props.Text{
					Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
				}),
				text.New(fmt.Sprintf("%s · %s %s", p.Category, p.Brand, p.Model), props.Text{
					Size: 8, Top: 10, Color: colorGray,
				}),
				text.New("$ "+p.Price.StringFixed(2), props.Text{
					Style: fontstyle.Bold, Size: 11, Top: 17,
				}),
			),
			col.New(5).Add(code.NewBar(p.SKU, props.Barcode{
				Percent: 85,
				Center:  true,
			})),
			col.New(2).Add(code.NewQr(p.ProductCode, props.Rect{
				Percent: 95,
				Center:  true,
			})),
		),
		row.New(6).Add(
			col.New(5),
			col.New(5).Add(text.New(p.SKU, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(p.ProductCode, props.Text{
				Size: 7, Align: align.Center, Top: 1, Color: colorGray,
			})),
		),
	}
}
