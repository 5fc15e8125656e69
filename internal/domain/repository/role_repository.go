package repository

import "github.com/automly/automotora-api/internal/domain/entity"

// RoleRepository define el puerto de persistencia para Role y UserRole.
// Todas las operaciones exigen dealerID (scoping estructural).
type RoleRepository interface {
	Create(role *entity.Role) error
	GetByID(dealerID, id string) (*entity.Role, error)
	GetByName(dealerID, name string) (*entity.Role, error)
	ListByDealer(dealerID string, limit, offset int) ([]*entity.Role, error)
	Delete(dealerID, id string) error

	// AssignToUser crea la fila (user, role); duplicado -> ErrDuplicate.
	// El rol y el usuario deben pertenecer a dealerID (verificado en el insert).
	AssignToUser(dealerID string, userRole *entity.UserRole) error
	RevokeFromUser(dealerID, userID, roleID string) error
	ListByUser(dealerID, userID string) ([]*entity.Role, error)
	// ListNamesByUser nombres de rol del usuario (para armar claims JWT).
	ListNamesByUser(userID string) ([]string, error)
}
