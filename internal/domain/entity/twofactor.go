package entity

import "time"

// User2FASecret secreto TOTP del usuario (uno por usuario como máximo).
// Secret se guarda en base32; LastUsedAt es telemetría del último código válido.
type User2FASecret struct {
	ID         string
	UserID     string
	Secret     string
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// User2FABackupCode código de recuperación de un solo uso.
// Se almacena el hash SHA-256 en hex, nunca el código plano.
type User2FABackupCode struct {
	ID        string
	UserID    string
	CodeHash  string
	IsUsed    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
