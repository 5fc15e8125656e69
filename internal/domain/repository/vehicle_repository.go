package repository

import "github.com/automly/automotora-api/internal/domain/entity"

// VehicleRepository define el puerto de persistencia para Vehicle.
// Cada método exige el dealerID del caller: no existe variante sin scope, así
// un id de otra automotora resuelve como inexistente (nunca "prohibido").
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(dealerID, id string) (*entity.Vehicle, error)
	Update(dealerID string, vehicle *entity.Vehicle) error
	// Deactivate baja lógica del vehículo dentro del tenant.
	Deactivate(dealerID, id string) error
	// ListByDealer vehículos del tenant, más recientes primero.
	ListByDealer(dealerID string, limit, offset int) ([]*entity.Vehicle, error)
}
