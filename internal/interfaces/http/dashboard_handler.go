package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/application/usecase"
)

// DashboardHandler contadores globales de plataforma (protegido).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Counts godoc
// @Summary      Contadores globales (automotoras y usuarios)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Counts(c *fiber.Ctx) error {
	out, err := h.uc.Counts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
