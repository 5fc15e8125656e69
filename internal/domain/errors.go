package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrNotFound cubre tanto el recurso inexistente como el que pertenece a otra
// automotora: ambos casos deben ser indistinguibles hacia afuera para no
// filtrar existencia entre tenants.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrTwoFactorRequired  = errors.New("se requiere código de segundo factor")
	ErrInvalidTOTPCode    = errors.New("código TOTP inválido o expirado")
	ErrInvalidBackupCode  = errors.New("código de recuperación inválido o ya utilizado")
	ErrNoDealerAssociated = errors.New("el usuario no tiene automotora asociada")
)
