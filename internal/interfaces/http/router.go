package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/sales"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	LabelUC   *usecase.LabelUseCase
	SKUUC     *usecase.SKUUseCase
	SaleUC    *sales.SaleUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token; las escrituras además exigen rol.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	catalogWriters := RequireRole(RoleAdmin, RoleBodeguero)
	sellers := RequireRole(RoleAdmin, RoleVendedor)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.LabelUC)
	products.Post("/", catalogWriters, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/code/:code", productHandler.GetByProductCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", catalogWriters, productHandler.Update)
	products.Delete("/:id", catalogWriters, productHandler.Delete)
	products.Post("/:id/regenerate-sku", catalogWriters, productHandler.RegenerateSKU)
	products.Get("/:id/label", productHandler.Label)
	api.Get("/labels", productHandler.CatalogLabels)

	// SKU tools (sin persistencia)
	skus := api.Group("/skus")
	skuHandler := NewSKUHandler(deps.SKUUC)
	skus.Post("/preview", skuHandler.Preview)
	skus.Get("/product-code", skuHandler.ProductCode)
	skus.Get("/tokens", skuHandler.Token)

	// Sales
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", sellers, saleHandler.Register)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
}
