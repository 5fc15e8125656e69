package repository

import (
	"time"

	"github.com/automly/automotora-api/internal/domain/entity"
)

// TwoFactorRepository define el puerto de persistencia para el secreto TOTP y
// los códigos de recuperación de un usuario.
type TwoFactorRepository interface {
	// CreateSecret persiste el secreto; segundo secreto para el mismo usuario -> ErrDuplicate.
	CreateSecret(secret *entity.User2FASecret) error
	GetSecretByUser(userID string) (*entity.User2FASecret, error)
	// TouchSecretUsed actualiza last_used_at tras una verificación TOTP exitosa (telemetría).
	TouchSecretUsed(userID string, usedAt time.Time) error
	DeleteSecret(userID string) error

	AddBackupCodes(userID string, codeHashes []string) error
	// ConsumeBackupCode marca un código activo como usado en un único UPDATE
	// (ACTIVE → USED, irreversible). Devuelve false si el hash no existe o ya
	// fue consumido: ambos casos son indistinguibles para el caller.
	ConsumeBackupCode(userID, codeHash string) (bool, error)
	CountActiveBackupCodes(userID string) (int, error)
}
