package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dealer representa una automotora (tenant del SaaS).
// Todos los datos del sistema cuelgan de un Dealer: usuarios, roles y vehículos.
type Dealer struct {
	ID       string
	Name     string
	RUT      string // RUT uruguayo, único a nivel global
	Phone    string
	WhatsApp string
	Email    string
	// DefaultMarginPercentage margen de ganancia por defecto (%), escala 2.
	// nil = sin margen configurado; el precio sugerido queda igual al costo.
	DefaultMarginPercentage *decimal.Decimal
	IsActive                bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}
