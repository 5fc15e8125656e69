package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// DealerUseCase casos de uso de administración de automotoras (tenants).
type DealerUseCase struct {
	repo repository.DealerRepository
}

// NewDealerUseCase construye el caso de uso con el puerto de persistencia.
func NewDealerUseCase(repo repository.DealerRepository) *DealerUseCase {
	return &DealerUseCase{repo: repo}
}

// Create da de alta una automotora. Devuelve domain.ErrDuplicate si el RUT ya existe.
func (uc *DealerUseCase) Create(in dto.CreateDealerRequest) (*dto.DealerResponse, error) {
	if in.Name == "" || in.RUT == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DefaultMarginPercentage != nil && in.DefaultMarginPercentage.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByRUT(in.RUT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	dealer := &entity.Dealer{
		ID:                      uuid.New().String(),
		Name:                    in.Name,
		RUT:                     in.RUT,
		Phone:                   in.Phone,
		WhatsApp:                in.WhatsApp,
		Email:                   in.Email,
		DefaultMarginPercentage: in.DefaultMarginPercentage,
		IsActive:                true,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
	if err := uc.repo.Create(dealer); err != nil {
		return nil, err
	}
	return toDealerResponse(dealer), nil
}

// GetByID obtiene una automotora por ID.
func (uc *DealerUseCase) GetByID(id string) (*dto.DealerResponse, error) {
	dealer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, nil
	}
	return toDealerResponse(dealer), nil
}

// Update actualiza datos de contacto y margen de la automotora.
func (uc *DealerUseCase) Update(id string, in dto.UpdateDealerRequest) (*dto.DealerResponse, error) {
	dealer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if dealer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		dealer.Name = *in.Name
	}
	if in.RUT != nil {
		dealer.RUT = *in.RUT
	}
	if in.Phone != nil {
		dealer.Phone = *in.Phone
	}
	if in.WhatsApp != nil {
		dealer.WhatsApp = *in.WhatsApp
	}
	if in.Email != nil {
		dealer.Email = *in.Email
	}
	if in.DefaultMarginPercentage != nil {
		if in.DefaultMarginPercentage.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		dealer.DefaultMarginPercentage = in.DefaultMarginPercentage
	}
	dealer.UpdatedAt = time.Now()
	if err := uc.repo.Update(dealer); err != nil {
		return nil, err
	}
	return toDealerResponse(dealer), nil
}

// Deactivate baja lógica de la automotora (nunca borra datos del tenant).
func (uc *DealerUseCase) Deactivate(id string) error {
	return uc.repo.Deactivate(id)
}

// List lista automotoras con búsqueda por nombre/RUT/email y filtro de activas.
func (uc *DealerUseCase) List(filter repository.DealerListFilter, limit, offset int) (*dto.DealerListResponse, error) {
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DealerResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDealerResponse(d))
	}
	return &dto.DealerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toDealerResponse(d *entity.Dealer) *dto.DealerResponse {
	if d == nil {
		return nil
	}
	return &dto.DealerResponse{
		ID:                      d.ID,
		Name:                    d.Name,
		RUT:                     d.RUT,
		Phone:                   d.Phone,
		WhatsApp:                d.WhatsApp,
		Email:                   d.Email,
		DefaultMarginPercentage: d.DefaultMarginPercentage,
		IsActive:                d.IsActive,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}
}
