package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/application/usecase"
)

// CatalogHandler catálogo de marcas y modelos (protegido, global).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Brands godoc
// @Summary      Listar marcas del catálogo
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CatalogBrandResponse
// @Router       /api/catalog/brands [get]
func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	out, err := h.uc.Brands()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ModelsByBrand godoc
// @Summary      Listar modelos de una marca
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        brand  path  string  true  "Código de la marca"
// @Success      200    {array}  dto.CatalogModelResponse
// @Router       /api/catalog/brands/{brand}/models [get]
func (h *CatalogHandler) ModelsByBrand(c *fiber.Ctx) error {
	out, err := h.uc.ModelsByBrand(c.Params("brand"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
