package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// RoleUseCase casos de uso de roles y asignaciones (RBAC por automotora).
type RoleUseCase struct {
	roleRepo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roleRepo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo}
}

// Create da de alta un rol en la automotora del caller.
// (dealer, name) duplicado -> ErrDuplicate.
func (uc *RoleUseCase) Create(dealerID string, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		DealerID:    dealerID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// List roles del tenant.
func (uc *RoleUseCase) List(dealerID string, limit, offset int) (*dto.RoleListResponse, error) {
	list, err := uc.roleRepo.ListByDealer(dealerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borra un rol del tenant; id ajeno resuelve como not found.
func (uc *RoleUseCase) Delete(dealerID, id string) error {
	return uc.roleRepo.Delete(dealerID, id)
}

// Assign asigna un rol a un usuario del tenant. Par (user, role) duplicado ->
// ErrDuplicate; usuario o rol de otra automotora -> ErrNotFound.
func (uc *RoleUseCase) Assign(dealerID string, in dto.AssignRoleRequest) error {
	if in.UserID == "" || in.RoleID == "" {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.roleRepo.AssignToUser(dealerID, &entity.UserRole{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		RoleID:    in.RoleID,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// Revoke quita un rol a un usuario del tenant.
func (uc *RoleUseCase) Revoke(dealerID, userID, roleID string) error {
	return uc.roleRepo.RevokeFromUser(dealerID, userID, roleID)
}

// ListByUser roles de un usuario del tenant.
func (uc *RoleUseCase) ListByUser(dealerID, userID string) (*dto.RoleListResponse, error) {
	list, err := uc.roleRepo.ListByUser(dealerID, userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{Items: items}, nil
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:          r.ID,
		DealerID:    r.DealerID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
