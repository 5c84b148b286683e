package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

const productNotFound = "producto no encontrado"

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	labels *usecase.LabelUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, labels *usecase.LabelUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, labels: labels}
}

// Create godoc
// @Summary      Crear producto
// @Description  Si sku viene vacío se genera como CAT-MAR-MOD-NNNN. El código de producto siempre se genera.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// GetBySKU godoc
// @Summary      Obtener producto por SKU
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU (CAT-MAR-MOD-NNNN)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/sku/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetBySKU(c.UserContext(), companyID, c.Params("sku"))
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// GetByProductCode godoc
// @Summary      Obtener producto por código de producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código de producto (8 hex)"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/code/{code} [get]
func (h *ProductHandler) GetByProductCode(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.GetByProductCode(c.UserContext(), companyID, c.Params("code"))
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.List(c.UserContext(), companyID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Solo nombre, descripción, precio y costo. SKU, código, categoría, marca y modelo no cambian.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), companyID, c.Params("id"), in)
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	if err := h.uc.Delete(c.UserContext(), companyID, c.Params("id")); err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegenerateSKU godoc
// @Summary      Regenerar SKU
// @Description  Asigna un SKU nuevo a partir de la categoría, marca y modelo guardados.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/regenerate-sku [post]
func (h *ProductHandler) RegenerateSKU(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	out, err := h.uc.RegenerateSKU(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// Label godoc
// @Summary      Etiqueta PDF del producto
// @Description  SKU en código de barras Code 128 y código de producto en QR.
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/label [get]
func (h *ProductHandler) Label(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	pdf, filename, err := h.labels.ProductLabel(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err, productNotFound)
	}
	return sendPDF(c, pdf, filename)
}

// CatalogLabels godoc
// @Summary      Hoja de etiquetas del catálogo
// @Tags         labels
// @Security     Bearer
// @Produce      application/pdf
// @Param        limit   query  int  false  "Máximo 100"  default(100)
// @Param        offset  query  int  false  "Offset"      default(0)
// @Success      200     {file}  binary
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/labels [get]
func (h *ProductHandler) CatalogLabels(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return unauthorized(c)
	}
	pdf, filename, err := h.labels.CatalogLabels(c.UserContext(), companyID, c.QueryInt("limit", usecase.MaxLabelsPerSheet), c.QueryInt("offset", 0))
	if err != nil {
		return writeError(c, err, "no hay productos para etiquetar")
	}
	return sendPDF(c, pdf, filename)
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.Send(pdf)
}
