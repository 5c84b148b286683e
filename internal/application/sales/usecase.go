package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	domainsales "github.com/jhoicas/catalogo-api/internal/domain/sales"
)

// SaleUseCase registra y consulta ventas con descuento.
type SaleUseCase struct {
	tx       TxRunner
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewSaleUseCase construye el caso de uso. saleRepo se usa para lecturas fuera de transacción.
func NewSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo, now: time.Now}
}

// Register registra la venta: valida el producto, calcula el descuento, descuenta stock e inserta.
// Errores: ErrInvalidInput, ErrNotFound (producto), ErrForbidden (otra empresa), ErrInsufficientStock.
func (uc *SaleUseCase) Register(ctx context.Context, companyID string, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if _, err := uuid.Parse(in.ProductID); err != nil {
		return nil, fmt.Errorf("product_id inválido: %w", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("quantity debe ser mayor a cero: %w", domain.ErrInvalidInput)
	}

	var sale *entity.Sale
	err := uc.tx.RunSale(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return domain.ErrForbidden
		}

		unitPrice := product.Price
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		// discount_percent es NUMERIC(5,2): el total se calcula con el porcentaje que se persiste.
		percent := in.DiscountPercent.Round(2)
		totals, err := domainsales.CalculateTotals(in.Quantity, unitPrice, percent, in.DiscountAmount)
		if err != nil {
			return err
		}
		if err := productRepo.AdjustStock(ctx, product.ID, -in.Quantity); err != nil {
			return err
		}

		now := uc.now()
		soldAt := now
		if in.SoldAt != nil {
			soldAt = *in.SoldAt
		}
		sale = &entity.Sale{
			ID:              uuid.New().String(),
			CompanyID:       companyID,
			ProductID:       product.ID,
			SKU:             product.SKU,
			Quantity:        in.Quantity,
			UnitPrice:       unitPrice,
			Subtotal:        totals.Subtotal,
			DiscountPercent: percent,
			DiscountAmount:  in.DiscountAmount.Round(2),
			Total:           totals.Total,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			SoldAt:          soldAt,
			CreatedAt:       now,
		}
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta de la empresa.
func (uc *SaleUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.SaleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("id de venta inválido: %w", domain.ErrInvalidInput)
	}
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toSaleResponse(sale), nil
}

// List lista las ventas de la empresa, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.SaleListResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.saleRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.saleRepo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		ProductID:       s.ProductID,
		SKU:             s.SKU,
		Quantity:        s.Quantity,
		UnitPrice:       s.UnitPrice,
		Subtotal:        s.Subtotal,
		DiscountPercent: s.DiscountPercent,
		DiscountAmount:  s.DiscountAmount,
		Total:           s.Total,
		CustomerName:    s.CustomerName,
		SoldAt:          s.SoldAt,
		CreatedAt:       s.CreatedAt,
	}
}
