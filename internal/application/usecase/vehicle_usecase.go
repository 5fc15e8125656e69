package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/pricing"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// VehicleUseCase casos de uso de vehículos. dealerID siempre es el del caller
// (viene del token): el caso de uso no puede operar fuera del tenant.
type VehicleUseCase struct {
	vehicleRepo repository.VehicleRepository
	serviceRepo repository.VehicleServiceRepository
	dealerRepo  repository.DealerRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(
	vehicleRepo repository.VehicleRepository,
	serviceRepo repository.VehicleServiceRepository,
	dealerRepo repository.DealerRepository,
) *VehicleUseCase {
	return &VehicleUseCase{vehicleRepo: vehicleRepo, serviceRepo: serviceRepo, dealerRepo: dealerRepo}
}

// Create da de alta un vehículo forzando el dealer del caller: cualquier
// dealer_id provisto por el cliente se descarta.
func (uc *VehicleUseCase) Create(dealerID string, in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if err := validateVehicleFields(in.Brand, in.Model, in.Year, in.OwnershipType, in.Currency); err != nil {
		return nil, err
	}
	if in.PurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	vehicle := &entity.Vehicle{
		ID:            uuid.New().String(),
		DealerID:      dealerID,
		Brand:         in.Brand,
		Model:         in.Model,
		Year:          in.Year,
		OwnershipType: in.OwnershipType,
		PurchasePrice: in.PurchasePrice,
		Currency:      in.Currency,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.vehicleRepo.Create(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// GetByID obtiene un vehículo del tenant; nil si no existe o es de otra automotora.
func (uc *VehicleUseCase) GetByID(dealerID, id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.vehicleRepo.GetByID(dealerID, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	return toVehicleResponse(vehicle), nil
}

// GetPricing devuelve el vehículo con sus costos calculados: suma de services
// activos pagados por la automotora, costo total y precio sugerido con el
// margen del dealer. Nada de esto se persiste.
func (uc *VehicleUseCase) GetPricing(dealerID, id string) (*dto.VehiclePricingResponse, error) {
	vehicle, err := uc.vehicleRepo.GetByID(dealerID, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	services, err := uc.serviceRepo.ListByVehicle(dealerID, id)
	if err != nil {
		return nil, err
	}
	// El margen puede faltar (dealer sin configurar o vehículo bootstrap):
	// se trata como 0 en lugar de fallar.
	margin := uc.dealerMargin(dealerID)

	return &dto.VehiclePricingResponse{
		Vehicle:            *toVehicleResponse(vehicle),
		TotalServicesCost:  pricing.TotalServicesCost(services),
		TotalCost:          pricing.TotalCost(vehicle, services),
		SuggestedSalePrice: pricing.SuggestedSalePrice(vehicle, services, margin),
	}, nil
}

// Update actualiza un vehículo del tenant; id ajeno resuelve como not found.
func (uc *VehicleUseCase) Update(dealerID, id string, in dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	vehicle, err := uc.vehicleRepo.GetByID(dealerID, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	if in.Brand != nil {
		vehicle.Brand = *in.Brand
	}
	if in.Model != nil {
		vehicle.Model = *in.Model
	}
	if in.Year != nil {
		vehicle.Year = *in.Year
	}
	if in.OwnershipType != nil {
		vehicle.OwnershipType = *in.OwnershipType
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		vehicle.PurchasePrice = *in.PurchasePrice
	}
	if in.Currency != nil {
		vehicle.Currency = *in.Currency
	}
	if err := validateVehicleFields(vehicle.Brand, vehicle.Model, vehicle.Year, vehicle.OwnershipType, vehicle.Currency); err != nil {
		return nil, err
	}
	vehicle.UpdatedAt = time.Now()
	if err := uc.vehicleRepo.Update(dealerID, vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

// Deactivate baja lógica del vehículo dentro del tenant.
func (uc *VehicleUseCase) Deactivate(dealerID, id string) error {
	return uc.vehicleRepo.Deactivate(dealerID, id)
}

// List lista vehículos del tenant, más recientes primero.
func (uc *VehicleUseCase) List(dealerID string, limit, offset int) (*dto.VehicleListResponse, error) {
	list, err := uc.vehicleRepo.ListByDealer(dealerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return &dto.VehicleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// dealerMargin margen configurado del dealer; nil si no hay dealer o no tiene margen.
func (uc *VehicleUseCase) dealerMargin(dealerID string) *decimal.Decimal {
	dealer, err := uc.dealerRepo.GetByID(dealerID)
	if err != nil || dealer == nil {
		return nil
	}
	return dealer.DefaultMarginPercentage
}

func validateVehicleFields(brand, model string, year int, ownershipType, currency string) error {
	if brand == "" || model == "" {
		return domain.ErrInvalidInput
	}
	if year <= 0 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidOwnershipType(ownershipType) {
		return domain.ErrInvalidInput
	}
	if !entity.ValidCurrency(currency) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	if v == nil {
		return nil
	}
	return &dto.VehicleResponse{
		ID:            v.ID,
		DealerID:      v.DealerID,
		Brand:         v.Brand,
		Model:         v.Model,
		Year:          v.Year,
		OwnershipType: v.OwnershipType,
		PurchasePrice: v.PurchasePrice,
		Currency:      v.Currency,
		IsActive:      v.IsActive,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}
