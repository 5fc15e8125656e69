package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// VehicleServiceUseCase casos de uso de services (costos de taller) de vehículos.
type VehicleServiceUseCase struct {
	serviceRepo repository.VehicleServiceRepository
	vehicleRepo repository.VehicleRepository
}

// NewVehicleServiceUseCase construye el caso de uso.
func NewVehicleServiceUseCase(
	serviceRepo repository.VehicleServiceRepository,
	vehicleRepo repository.VehicleRepository,
) *VehicleServiceUseCase {
	return &VehicleServiceUseCase{serviceRepo: serviceRepo, vehicleRepo: vehicleRepo}
}

// Create da de alta un service. El vehículo se resuelve dentro del tenant del
// caller: un vehicle_id de otra automotora resuelve como not found, así que es
// imposible colgar un service de un vehículo ajeno.
func (uc *VehicleServiceUseCase) Create(dealerID string, in dto.CreateVehicleServiceRequest) (*dto.VehicleServiceResponse, error) {
	if in.VehicleID == "" || in.Amount.IsNegative() || !entity.ValidPayer(in.Payer) || in.ServiceDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	vehicle, err := uc.vehicleRepo.GetByID(dealerID, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	service := &entity.VehicleService{
		ID:          uuid.New().String(),
		VehicleID:   vehicle.ID,
		Description: in.Description,
		Amount:      in.Amount,
		Payer:       in.Payer,
		ServiceDate: in.ServiceDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return toVehicleServiceResponse(service), nil
}

// GetByID obtiene un service del tenant; nil si no existe o es de otra automotora.
func (uc *VehicleServiceUseCase) GetByID(dealerID, id string) (*dto.VehicleServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(dealerID, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	return toVehicleServiceResponse(service), nil
}

// Update actualiza un service del tenant.
func (uc *VehicleServiceUseCase) Update(dealerID, id string, in dto.UpdateVehicleServiceRequest) (*dto.VehicleServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(dealerID, id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		service.Amount = *in.Amount
	}
	if in.Payer != nil {
		if !entity.ValidPayer(*in.Payer) {
			return nil, domain.ErrInvalidInput
		}
		service.Payer = *in.Payer
	}
	if in.ServiceDate != nil {
		service.ServiceDate = *in.ServiceDate
	}
	service.UpdatedAt = time.Now()
	if err := uc.serviceRepo.Update(dealerID, service); err != nil {
		return nil, err
	}
	return toVehicleServiceResponse(service), nil
}

// Deactivate baja lógica del service dentro del tenant. Un service inactivo
// deja de integrar el costo del vehículo.
func (uc *VehicleServiceUseCase) Deactivate(dealerID, id string) error {
	return uc.serviceRepo.Deactivate(dealerID, id)
}

// ListByVehicle services de un vehículo del tenant, más recientes primero.
func (uc *VehicleServiceUseCase) ListByVehicle(dealerID, vehicleID string) (*dto.VehicleServiceListResponse, error) {
	vehicle, err := uc.vehicleRepo.GetByID(dealerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.serviceRepo.ListByVehicle(dealerID, vehicleID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toVehicleServiceResponse(s))
	}
	return &dto.VehicleServiceListResponse{Items: items}, nil
}

// List todos los services del tenant con paginación.
func (uc *VehicleServiceUseCase) List(dealerID string, limit, offset int) (*dto.VehicleServiceListResponse, error) {
	list, err := uc.serviceRepo.ListByDealer(dealerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toVehicleServiceResponse(s))
	}
	return &dto.VehicleServiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toVehicleServiceResponse(s *entity.VehicleService) *dto.VehicleServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.VehicleServiceResponse{
		ID:          s.ID,
		VehicleID:   s.VehicleID,
		Description: s.Description,
		Amount:      s.Amount,
		Payer:       s.Payer,
		ServiceDate: s.ServiceDate,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
