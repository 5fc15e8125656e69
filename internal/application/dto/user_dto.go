package dto

import "time"

// RegisterRequest alta de usuario. DealerID vacío solo para bootstrap de plataforma.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	DealerID string `json:"dealer_id"`
}

// LoginRequest credenciales de login. TOTPCode o BackupCode se exigen cuando
// el usuario tiene 2FA confirmado.
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	TOTPCode   string `json:"totp_code,omitempty"`
	BackupCode string `json:"backup_code,omitempty"`
}

// LoginResponse token + usuario. Si RequiresTwoFactor es true no hay token:
// el cliente debe repetir el login incluyendo totp_code o backup_code.
type LoginResponse struct {
	Token             string        `json:"token,omitempty"`
	RequiresTwoFactor bool          `json:"requires_two_factor,omitempty"`
	User              *UserResponse `json:"user,omitempty"`
}

// UserResponse representación de un usuario (sin credenciales).
type UserResponse struct {
	ID                   string     `json:"id"`
	DealerID             string     `json:"dealer_id,omitempty"`
	Username             string     `json:"username"`
	Email                string     `json:"email"`
	Is2FAEnabled         bool       `json:"is_2fa_enabled"`
	TwoFactorConfirmedAt *time.Time `json:"two_factor_confirmed_at,omitempty"`
	IsActive             bool       `json:"is_active"`
	Roles                []string   `json:"roles,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// UserListResponse listado paginado de usuarios del tenant.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// CreateRoleRequest alta de rol en la automotora del caller.
type CreateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoleResponse representación de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	DealerID    string    `json:"dealer_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleListResponse listado paginado de roles.
type RoleListResponse struct {
	Items []RoleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// AssignRoleRequest asignación de un rol a un usuario del tenant.
type AssignRoleRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"role_id"`
}
