package usecase_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/sku"
)

func TestSKUPreview(t *testing.T) {
	m := &countingMetrics{}
	uc := usecase.NewSKUUseCase(sku.NewGenerator(bytes.NewReader([]byte{0x00, 0x2A})), m)

	out, err := uc.Preview(dto.PreviewSKURequest{Category: "Frenos", Brand: "BREMBO"})
	require.NoError(t, err)
	assert.Equal(t, "FRE-BRE-GEN-0042", out.SKU)
	assert.Equal(t, dto.SKUTokens{Category: "FRE", Brand: "BRE", Model: "GEN", Suffix: "0042"}, out.Tokens)
	assert.Equal(t, 1, m.generic)
}

func TestSKUPreview_EntradaInvalida(t *testing.T) {
	uc := usecase.NewSKUUseCase(sku.NewGenerator(nil), nil)
	_, err := uc.Preview(dto.PreviewSKURequest{Category: "", Brand: "BREMBO", Model: "F150"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSKUProductCodeYToken(t *testing.T) {
	uc := usecase.NewSKUUseCase(sku.NewGenerator(bytes.NewReader([]byte{0x01, 0x23, 0xab, 0xcd})), nil)
	out, err := uc.ProductCode()
	require.NoError(t, err)
	assert.Equal(t, "0123ABCD", out.ProductCode)

	tok := uc.Token("Suspensión")
	assert.Equal(t, "SUS", tok.Token)
	assert.Equal(t, "Suspensión", tok.Name)
}
