package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de tenencia de un vehículo.
const (
	OwnershipDealer      = "DEALER"      // propiedad de la automotora
	OwnershipConsignment = "CONSIGNMENT" // en consignación, propiedad de un tercero
)

// Monedas soportadas.
const (
	CurrencyUYU = "UYU"
	CurrencyUSD = "USD"
)

// Vehicle representa un vehículo en el stock de una automotora.
// PurchasePrice es el precio de compra en la moneda indicada; el costo total
// y el precio sugerido se calculan en el dominio (paquete pricing), nunca se
// persisten.
type Vehicle struct {
	ID            string
	DealerID      string
	Brand         string
	Model         string
	Year          int // > 0
	OwnershipType string
	PurchasePrice decimal.Decimal // >= 0, escala 2
	Currency      string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidOwnershipType indica si el tipo de tenencia es uno de los soportados.
func ValidOwnershipType(s string) bool {
	return s == OwnershipDealer || s == OwnershipConsignment
}

// ValidCurrency indica si la moneda es una de las soportadas.
func ValidCurrency(s string) bool {
	return s == CurrencyUYU || s == CurrencyUSD
}
