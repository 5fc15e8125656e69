package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/application/usecase"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// DealerHandler maneja las peticiones HTTP para Dealer (administración de plataforma).
type DealerHandler struct {
	uc *usecase.DealerUseCase
}

// NewDealerHandler construye el handler.
func NewDealerHandler(uc *usecase.DealerUseCase) *DealerHandler {
	return &DealerHandler{uc: uc}
}

// Create godoc
// @Summary      Crear automotora
// @Tags         dealers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDealerRequest  true  "Datos de la automotora"
// @Success      201   {object}  dto.DealerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dealers [post]
func (h *DealerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDealerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y rut son requeridos; el margen no puede ser negativo"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una automotora con ese RUT"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener automotora por ID
// @Tags         dealers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la automotora"
// @Success      200  {object}  dto.DealerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dealers/{id} [get]
func (h *DealerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "automotora no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar automotoras (búsqueda por nombre, RUT o email)
// @Tags         dealers
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Texto a buscar"
// @Param        active  query  bool    false  "Filtrar por estado"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.DealerListResponse
// @Router       /api/dealers [get]
func (h *DealerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.DealerListFilter{Query: c.Query("q")}
	if raw := c.Query("active"); raw != "" {
		active := raw == "true" || raw == "1"
		filter.IsActive = &active
	}
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar automotora
// @Tags         dealers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la automotora"
// @Param        body  body  dto.UpdateDealerRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DealerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/dealers/{id} [put]
func (h *DealerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateDealerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "automotora no encontrada"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una automotora con ese RUT"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar automotora (borrado lógico)
// @Tags         dealers
// @Security     Bearer
// @Param        id  path  string  true  "ID de la automotora"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dealers/{id} [delete]
func (h *DealerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "automotora no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams lee limit/offset con los defaults y topes del listado.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
