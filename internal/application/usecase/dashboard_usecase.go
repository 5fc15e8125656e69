package usecase

import (
	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// DashboardUseCase contadores globales de plataforma.
type DashboardUseCase struct {
	dealerRepo repository.DealerRepository
	userRepo   repository.UserRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dealerRepo repository.DealerRepository, userRepo repository.UserRepository) *DashboardUseCase {
	return &DashboardUseCase{dealerRepo: dealerRepo, userRepo: userRepo}
}

// Counts cantidad de automotoras y de usuarios registrados.
func (uc *DashboardUseCase) Counts() (*dto.DashboardResponse, error) {
	dealers, err := uc.dealerRepo.Count()
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{DealersCount: dealers, UsersCount: users}, nil
}
