package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/application/twofa"
	"github.com/automly/automotora-api/internal/domain"
)

// TwoFactorHandler maneja el enrolamiento y la consulta 2FA del usuario autenticado.
type TwoFactorHandler struct {
	uc *twofa.UseCase
}

// NewTwoFactorHandler construye el handler.
func NewTwoFactorHandler(uc *twofa.UseCase) *TwoFactorHandler {
	return &TwoFactorHandler{uc: uc}
}

// Enroll godoc
// @Summary      Iniciar enrolamiento 2FA (genera secreto y URL para el QR)
// @Tags         2fa
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EnrollTwoFactorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/2fa/enroll [post]
func (h *TwoFactorHandler) Enroll(c *fiber.Ctx) error {
	out, err := h.uc.Enroll(GetUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_ENROLLED", Message: "el usuario ya tiene un enrolamiento 2FA iniciado o confirmado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar enrolamiento 2FA con un código TOTP vigente
// @Tags         2fa
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmTwoFactorRequest  true  "Código TOTP"
// @Success      200   {object}  dto.ConfirmTwoFactorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/2fa/confirm [post]
func (h *TwoFactorHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmTwoFactorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
	}
	out, err := h.uc.Confirm(c.UserContext(), GetUserID(c), in.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_PENDING", Message: "no hay un enrolamiento pendiente de confirmar"})
		case errors.Is(err, domain.ErrInvalidTOTPCode):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOTP", Message: "código TOTP inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado 2FA del usuario autenticado
// @Tags         2fa
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TwoFactorStatusResponse
// @Router       /api/2fa/status [get]
func (h *TwoFactorHandler) Status(c *fiber.Ctx) error {
	out, err := h.uc.Status(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
