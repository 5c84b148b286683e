package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// SKUHandler herramientas de códigos (sin persistencia).
type SKUHandler struct {
	uc *usecase.SKUUseCase
}

// NewSKUHandler construye el handler.
func NewSKUHandler(uc *usecase.SKUUseCase) *SKUHandler {
	return &SKUHandler{uc: uc}
}

// Preview godoc
// @Summary      Previsualizar SKU
// @Description  Genera un SKU candidato sin reservarlo.
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewSKURequest  true  "Categoría, marca y modelo"
// @Success      200   {object}  dto.PreviewSKUResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/skus/preview [post]
func (h *SKUHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewSKURequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Preview(in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// ProductCode godoc
// @Summary      Generar código de producto
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProductCodeResponse
// @Router       /api/skus/product-code [get]
func (h *SKUHandler) ProductCode(c *fiber.Ctx) error {
	out, err := h.uc.ProductCode()
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}

// Token godoc
// @Summary      Token normalizado de un nombre
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        name  query  string  true  "Nombre a normalizar"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/skus/tokens [get]
func (h *SKUHandler) Token(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	return c.JSON(h.uc.Token(name))
}
