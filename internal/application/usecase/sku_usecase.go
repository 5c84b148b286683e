package usecase

import (
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/sku"
)

// SKUUseCase herramientas de códigos sin persistencia: previsualización de SKU,
// código de producto suelto y token de un nombre.
type SKUUseCase struct {
	gen     CodeGenerator
	metrics CodeMetrics
}

// NewSKUUseCase construye el caso de uso. metrics puede ser nil.
func NewSKUUseCase(gen CodeGenerator, metrics CodeMetrics) *SKUUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &SKUUseCase{gen: gen, metrics: metrics}
}

// Preview genera un SKU candidato. No reserva el código: otro producto puede tomarlo antes.
func (uc *SKUUseCase) Preview(in dto.PreviewSKURequest) (*dto.PreviewSKUResponse, error) {
	code, err := uc.gen.SKU(in.Category, in.Brand, in.Model)
	if err != nil {
		return nil, err
	}
	parts, err := sku.Parse(code)
	if err != nil {
		return nil, err
	}
	uc.metrics.SKUGenerated(parts.Generic())
	return &dto.PreviewSKUResponse{
		SKU: code,
		Tokens: dto.SKUTokens{
			Category: parts.Category,
			Brand:    parts.Brand,
			Model:    parts.Model,
			Suffix:   parts.Suffix,
		},
	}, nil
}

// ProductCode genera un código de producto suelto.
func (uc *SKUUseCase) ProductCode() (*dto.ProductCodeResponse, error) {
	code, err := uc.gen.ProductCode()
	if err != nil {
		return nil, err
	}
	uc.metrics.ProductCodeGenerated()
	return &dto.ProductCodeResponse{ProductCode: code}, nil
}

// Token devuelve el segmento normalizado de un nombre.
func (uc *SKUUseCase) Token(name string) dto.TokenResponse {
	return dto.TokenResponse{Name: name, Token: sku.Token(name)}
}
