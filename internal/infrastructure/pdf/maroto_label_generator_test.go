package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/pdf"
)

func TestGenerateLabelsPDF(t *testing.T) {
	g := pdf.NewMarotoLabelGenerator("Repuestos El Taller")
	products := []*entity.Product{
		{
			SKU: "FRE-BRE-F15-0042", ProductCode: "DEADBEEF",
			Name: "Pastillas de freno", Category: "Frenos", Brand: "BREMBO", Model: "F150",
			Price: decimal.RequireFromString("125000.50"),
		},
		{
			SKU: "ACE-MOB-GEN-0007", ProductCode: "0123ABCD",
			Name: "Aceite 5W-30", Category: "Aceites", Brand: "Mobil",
			Price: decimal.NewFromInt(48000),
		},
	}

	out, err := g.GenerateLabelsPDF(context.Background(), products)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateLabelsPDF_SinProductos(t *testing.T) {
	_, err := pdf.NewMarotoLabelGenerator("").GenerateLabelsPDF(context.Background(), nil)
	assert.Error(t, err)
}

func TestGenerateLabelsPDF_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := pdf.NewMarotoLabelGenerator("").GenerateLabelsPDF(ctx, []*entity.Product{{SKU: "FRE-BRE-F15-0042", ProductCode: "DEADBEEF"}})
	assert.ErrorIs(t, err, context.Canceled)
}
