package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVehicleRequest alta de vehículo. El dealer del vehículo se toma del
// token del caller; cualquier dealer_id del body se ignora.
type CreateVehicleRequest struct {
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	OwnershipType string          `json:"ownership_type"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Currency      string          `json:"currency"`
}

// UpdateVehicleRequest actualización parcial de vehículo.
type UpdateVehicleRequest struct {
	Brand         *string          `json:"brand"`
	Model         *string          `json:"model"`
	Year          *int             `json:"year"`
	OwnershipType *string          `json:"ownership_type"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	Currency      *string          `json:"currency"`
}

// VehicleResponse representación de un vehículo.
type VehicleResponse struct {
	ID            string          `json:"id"`
	DealerID      string          `json:"dealer_id"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Year          int             `json:"year"`
	OwnershipType string          `json:"ownership_type"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Currency      string          `json:"currency"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// VehiclePricingResponse vehículo + costos calculados (nunca persistidos).
type VehiclePricingResponse struct {
	Vehicle            VehicleResponse `json:"vehicle"`
	TotalServicesCost  decimal.Decimal `json:"total_services_cost"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	SuggestedSalePrice decimal.Decimal `json:"suggested_sale_price"`
}

// VehicleListResponse listado paginado de vehículos.
type VehicleListResponse struct {
	Items []VehicleResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateVehicleServiceRequest alta de service. El vehículo debe pertenecer al
// tenant del caller; si no, la operación resuelve como not found.
type CreateVehicleServiceRequest struct {
	VehicleID   string          `json:"vehicle_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Payer       string          `json:"payer"`
	ServiceDate time.Time       `json:"service_date"`
}

// UpdateVehicleServiceRequest actualización parcial de service.
type UpdateVehicleServiceRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Payer       *string          `json:"payer"`
	ServiceDate *time.Time       `json:"service_date"`
}

// VehicleServiceResponse representación de un service.
type VehicleServiceResponse struct {
	ID          string          `json:"id"`
	VehicleID   string          `json:"vehicle_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Payer       string          `json:"payer"`
	ServiceDate time.Time       `json:"service_date"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// VehicleServiceListResponse listado paginado de services.
type VehicleServiceListResponse struct {
	Items []VehicleServiceResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}

// CatalogBrandResponse marca del catálogo.
type CatalogBrandResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CatalogModelResponse modelo del catálogo.
type CatalogModelResponse struct {
	BrandCode string `json:"brand_code"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}
