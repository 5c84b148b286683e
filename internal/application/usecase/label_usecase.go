package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// MaxLabelsPerSheet productos por PDF en la impresión por lote.
const MaxLabelsPerSheet = 100

// LabelUseCase genera etiquetas PDF con el SKU y el código de producto.
type LabelUseCase struct {
	repo      repository.ProductRepository
	generator LabelPDFGenerator
}

// NewLabelUseCase construye el caso de uso.
func NewLabelUseCase(repo repository.ProductRepository, generator LabelPDFGenerator) *LabelUseCase {
	return &LabelUseCase{repo: repo, generator: generator}
}

// ProductLabel genera la etiqueta de un producto.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrInvalidInput si productID no es un UUID.
//   - domain.ErrNotFound  si el producto no existe.
//   - domain.ErrForbidden si el producto no pertenece a la empresa del token.
func (uc *LabelUseCase) ProductLabel(ctx context.Context, companyID, productID string) ([]byte, string, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, "", fmt.Errorf("id de producto inválido: %w", domain.ErrInvalidInput)
	}
	p, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, "", fmt.Errorf("etiqueta: obtener producto: %w", err)
	}
	if p == nil {
		return nil, "", domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, "", domain.ErrForbidden
	}
	pdf, err := uc.generator.GenerateLabelsPDF(ctx, []*entity.Product{p})
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("etiqueta-%s.pdf", p.SKU), nil
}

// CatalogLabels genera una hoja con las etiquetas de una página del catálogo.
func (uc *LabelUseCase) CatalogLabels(ctx context.Context, companyID string, limit, offset int) ([]byte, string, error) {
	if limit <= 0 || limit > MaxLabelsPerSheet {
		limit = MaxLabelsPerSheet
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, "", fmt.Errorf("etiquetas: listar productos: %w", err)
	}
	if len(list) == 0 {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateLabelsPDF(ctx, list)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("etiquetas-%d-%d.pdf", offset, offset+len(list)), nil
}
