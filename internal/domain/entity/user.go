package entity

import "time"

// Nombres de rol sugeridos por automotora (RBAC). Los roles se crean por
// tenant; estos son los que el seed inicial da de alta.
const (
	RoleOwner      = "OWNER"
	RoleAdmin      = "ADMIN"
	RoleSales      = "SALES"
	RoleAccounting = "ACCOUNTING"
	RoleViewer     = "VIEWER"
)

// User representa un usuario del sistema. Siempre pertenece a un Dealer
// (multi-tenant); DealerID vacío solo durante bootstrap de la plataforma.
type User struct {
	ID           string
	DealerID     string // vacío = usuario bootstrap sin automotora
	Username     string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	// Estado 2FA. Ambos campos se escriben juntos en la confirmación:
	// Is2FAEnabled=true si y solo si TwoFactorConfirmedAt quedó seteado.
	Is2FAEnabled         bool
	TwoFactorConfirmedAt *time.Time
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Role rol funcional dentro de una automotora. (dealer, name) es único.
type Role struct {
	ID          string
	DealerID    string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserRole relación N:M entre usuarios y roles. (user, role) es único;
// un usuario puede tener múltiples roles.
type UserRole struct {
	ID        string
	UserID    string
	RoleID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
