package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/domain/sku"
)

// DefaultMaxCodeAttempts intentos de generación antes de rendirse con ErrSKUExhausted.
const DefaultMaxCodeAttempts = 5

// ProductConfig opciones del caso de uso de productos.
type ProductConfig struct {
	MaxCodeAttempts int
	Log             *zerolog.Logger // nil = sin logs
	Metrics         CodeMetrics
}

// ProductUseCase casos de uso del catálogo. La unicidad de SKU y código de producto la
// garantiza el repositorio (constraint único); aquí se reintenta la generación ante colisión.
type ProductUseCase struct {
	repo        repository.ProductRepository
	gen         CodeGenerator
	maxAttempts int
	log         zerolog.Logger
	metrics     CodeMetrics
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, gen CodeGenerator, cfg ProductConfig) *ProductUseCase {
	if cfg.MaxCodeAttempts < 1 {
		cfg.MaxCodeAttempts = DefaultMaxCodeAttempts
	}
	if cfg.Metrics == nil {
		cfg.Metrics = noopMetrics{}
	}
	log := zerolog.Nop()
	if cfg.Log != nil {
		log = *cfg.Log
	}
	return &ProductUseCase{
		repo:        repo,
		gen:         gen,
		maxAttempts: cfg.MaxCodeAttempts,
		log:         log,
		metrics:     cfg.Metrics,
	}
}

// Create crea un producto. Genera el SKU si no viene en la petición y siempre genera el código de producto.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
	if in.Name == "" || in.Category == "" || in.Brand == "" {
		return nil, fmt.Errorf("name, category y brand son requeridos: %w", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.Stock < 0 {
		return nil, fmt.Errorf("precio, costo y stock no pueden ser negativos: %w", domain.ErrInvalidInput)
	}

	manualSKU := strings.ToUpper(strings.TrimSpace(in.SKU))
	if manualSKU != "" {
		if _, err := sku.Parse(manualSKU); err != nil {
			return nil, err
		}
		if err := uc.ensureFreeSKU(ctx, companyID, manualSKU); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Category:    in.Category,
		Brand:       in.Brand,
		Model:       in.Model,
		Description: in.Description,
		Price:       in.Price,
		Cost:        in.Cost,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		generatedSKU := manualSKU == ""
		product.SKU = manualSKU
		if generatedSKU {
			code, err := uc.gen.SKU(product.Category, product.Brand, product.Model)
			if err != nil {
				return nil, err
			}
			product.SKU = code
		}
		code, err := uc.gen.ProductCode()
		if err != nil {
			return nil, err
		}
		product.ProductCode = code

		err = uc.repo.Create(ctx, product)
		if err == nil {
			if generatedSKU {
				uc.metrics.SKUGenerated(product.Model == "")
			}
			uc.metrics.ProductCodeGenerated()
			return toProductResponse(product), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		// Con SKU manual, el duplicado solo es reintentable si chocó el código de producto.
		kind := "sku"
		if !generatedSKU {
			if err := uc.ensureFreeSKU(ctx, companyID, manualSKU); err != nil {
				return nil, err
			}
			kind = "product_code"
		}
		uc.metrics.CodeCollision(kind)
		uc.log.Warn().
			Str("company_id", companyID).
			Str("sku", product.SKU).
			Str("product_code", product.ProductCode).
			Int("attempt", attempt).
			Msg("código de producto duplicado, reintentando")
	}
	return nil, domain.ErrSKUExhausted
}

func (uc *ProductUseCase) ensureFreeSKU(ctx context.Context, companyID, code string) error {
	existing, err := uc.repo.GetByCompanyAndSKU(ctx, companyID, code)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("sku %s: %w", code, domain.ErrDuplicate)
	}
	return nil
}

// RegenerateSKU asigna un SKU nuevo a partir de la categoría, marca y modelo guardados.
func (uc *ProductUseCase) RegenerateSKU(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		code, err := uc.gen.SKU(product.Category, product.Brand, product.Model)
		if err != nil {
			return nil, err
		}
		if code == product.SKU {
			uc.metrics.CodeCollision("sku")
			continue
		}
		err = uc.repo.UpdateSKU(ctx, product.ID, code)
		if err == nil {
			uc.metrics.SKUGenerated(product.Model == "")
			uc.log.Info().
				Str("company_id", companyID).
				Str("product_id", product.ID).
				Str("old_sku", product.SKU).
				Str("new_sku", code).
				Msg("SKU regenerado")
			product.SKU = code
			product.UpdatedAt = time.Now()
			return toProductResponse(product), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) {
			return nil, err
		}
		uc.metrics.CodeCollision("sku")
	}
	return nil, domain.ErrSKUExhausted
}

// GetByID obtiene un producto de la empresa.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetBySKU obtiene un producto por su SKU dentro de la empresa.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, companyID, code string) (*dto.ProductResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, err := sku.Parse(code); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByCompanyAndSKU(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetByProductCode obtiene un producto por su código de 8 caracteres hexadecimales.
func (uc *ProductUseCase) GetByProductCode(ctx context.Context, companyID, code string) (*dto.ProductResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !sku.ValidProductCode(code) {
		return nil, fmt.Errorf("código de producto %q inválido: %w", code, domain.ErrInvalidInput)
	}
	product, err := uc.repo.GetByCompanyAndProductCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza datos descriptivos y precios. SKU, código, categoría, marca y modelo no cambian.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.owned(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("name vacío: %w", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, fmt.Errorf("costo negativo: %w", domain.ErrInvalidInput)
		}
		product.Cost = *in.Cost
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Delete elimina un producto de la empresa.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uc.owned(ctx, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// owned carga el producto y verifica que pertenezca a la empresa del token.
func (uc *ProductUseCase) owned(ctx context.Context, companyID, id string) (*entity.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("id de producto inválido: %w", domain.ErrInvalidInput)
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		SKU:         p.SKU,
		ProductCode: p.ProductCode,
		Name:        p.Name,
		Category:    p.Category,
		Brand:       p.Brand,
		Model:       p.Model,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
