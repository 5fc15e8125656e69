package usecase

import (
	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// UserUseCase consultas de usuarios dentro de la automotora del caller.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// GetByID resuelve un usuario del tenant con sus roles; un id de otra
// automotora se comporta como inexistente.
func (uc *UserUseCase) GetByID(dealerID, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByIDAndDealer(dealerID, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	roles, err := uc.roleRepo.ListNamesByUser(user.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, roles), nil
}

// List usuarios del tenant.
func (uc *UserUseCase) List(dealerID string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.userRepo.ListByDealer(dealerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u, nil))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toUserResponse(u *entity.User, roles []string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                   u.ID,
		DealerID:             u.DealerID,
		Username:             u.Username,
		Email:                u.Email,
		Is2FAEnabled:         u.Is2FAEnabled,
		TwoFactorConfirmedAt: u.TwoFactorConfirmedAt,
		IsActive:             u.IsActive,
		Roles:                roles,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}
