package repository

import (
	"time"

	"github.com/automly/automotora-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Los listados exigen dealerID: el scoping multi-tenant es parte de la firma,
// no una convención por llamada. GetByUsername no se scopea porque el login
// ocurre antes de conocer el tenant.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetByIDAndDealer resuelve un usuario solo si pertenece a la automotora;
	// un id de otro tenant se comporta como inexistente.
	GetByIDAndDealer(dealerID, id string) (*entity.User, error)
	Update(user *entity.User) error
	// ConfirmTwoFactor escribe is_2fa_enabled=true y two_factor_confirmed_at
	// juntos en un único UPDATE (nunca un campo sin el otro).
	ConfirmTwoFactor(userID string, confirmedAt time.Time) error
	ListByDealer(dealerID string, limit, offset int) ([]*entity.User, error)
	Count() (int, error)
}
