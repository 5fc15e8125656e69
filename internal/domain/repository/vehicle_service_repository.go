package repository

import "github.com/automly/automotora-api/internal/domain/entity"

// VehicleServiceRepository define el puerto de persistencia para VehicleService.
// El scoping por dealer atraviesa el join con vehicles: un service solo es
// visible si su vehículo pertenece a dealerID.
type VehicleServiceRepository interface {
	Create(service *entity.VehicleService) error
	GetByID(dealerID, id string) (*entity.VehicleService, error)
	Update(dealerID string, service *entity.VehicleService) error
	Deactivate(dealerID, id string) error
	// ListByVehicle services de un vehículo del tenant, service_date DESC.
	ListByVehicle(dealerID, vehicleID string) ([]*entity.VehicleService, error)
	// ListByDealer todos los services del tenant (join a través de vehicles).
	ListByDealer(dealerID string, limit, offset int) ([]*entity.VehicleService, error)
}
