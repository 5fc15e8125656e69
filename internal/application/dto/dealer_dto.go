package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDealerRequest alta de automotora (onboarding de tenant).
type CreateDealerRequest struct {
	Name                    string           `json:"name"`
	RUT                     string           `json:"rut"`
	Phone                   string           `json:"phone"`
	WhatsApp                string           `json:"whatsapp"`
	Email                   string           `json:"email"`
	DefaultMarginPercentage *decimal.Decimal `json:"default_margin_percentage"`
}

// UpdateDealerRequest actualización parcial de automotora.
type UpdateDealerRequest struct {
	Name                    *string          `json:"name"`
	RUT                     *string          `json:"rut"`
	Phone                   *string          `json:"phone"`
	WhatsApp                *string          `json:"whatsapp"`
	Email                   *string          `json:"email"`
	DefaultMarginPercentage *decimal.Decimal `json:"default_margin_percentage"`
}

// DealerResponse representación de una automotora.
type DealerResponse struct {
	ID                      string           `json:"id"`
	Name                    string           `json:"name"`
	RUT                     string           `json:"rut"`
	Phone                   string           `json:"phone"`
	WhatsApp                string           `json:"whatsapp"`
	Email                   string           `json:"email"`
	DefaultMarginPercentage *decimal.Decimal `json:"default_margin_percentage"`
	IsActive                bool             `json:"is_active"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

// DealerListResponse listado paginado de automotoras.
type DealerListResponse struct {
	Items []DealerResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// DashboardResponse conteos globales para la pantalla inicial.
type DashboardResponse struct {
	DealersCount int `json:"dealers_count"`
	UsersCount   int `json:"users_count"`
}
