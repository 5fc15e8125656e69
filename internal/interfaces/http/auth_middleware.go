package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/pkg/jwt"
)

// Locals keys para UserID, DealerID y Roles en Fiber.
const (
	LocalUserID   = "user_id"
	LocalDealerID = "dealer_id"
	LocalRoles    = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, DealerID y Roles a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalDealerID, claims.DealerID)
		c.Locals(LocalRoles, claims.Roles)
		return c.Next()
	}
}

// RequireDealer exige que el caller tenga una automotora asociada. Usuarios
// bootstrap (sin dealer) no acceden a las rutas scopeadas por tenant.
func RequireDealer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetDealerID(c) == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_DEALER", Message: "el usuario no tiene automotora asociada"})
		}
		return c.Next()
	}
}

// RequireRole exige que el caller tenga alguno de los roles indicados.
func RequireRole(names ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles := GetRoles(c)
		for _, have := range roles {
			for _, want := range names {
				if have == want {
					return c.Next()
				}
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol insuficiente"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetDealerID devuelve el DealerID del contexto (después del middleware de auth).
func GetDealerID(c *fiber.Ctx) string {
	v := c.Locals(LocalDealerID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRoles devuelve los roles del contexto (después del middleware de auth).
func GetRoles(c *fiber.Ctx) []string {
	v := c.Locals(LocalRoles)
	if v == nil {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}
