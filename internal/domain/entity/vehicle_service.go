package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quién pagó un service del vehículo.
const (
	PayerDealer = "DEALER" // pagado por la automotora: cuenta como costo
	PayerOwner  = "OWNER"  // pagado por el dueño (consignación): no es costo del dealer
)

// VehicleService representa un gasto de taller/acondicionamiento asociado a un
// vehículo. Solo los services activos pagados por la automotora integran el
// costo total del vehículo.
type VehicleService struct {
	ID          string
	VehicleID   string
	Description string
	Amount      decimal.Decimal // >= 0, escala 2
	Payer       string
	ServiceDate time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidPayer indica si el pagador es uno de los soportados.
func ValidPayer(s string) bool {
	return s == PayerDealer || s == PayerOwner
}
