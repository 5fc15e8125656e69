// Package twofactor modela el ciclo de vida 2FA de un usuario como una máquina
// de estados con transiciones guardadas:
//
//	NO_2FA → 2FA_PENDING → 2FA_CONFIRMED
//
// Solo las aristas válidas son invocables; las combinaciones inalcanzables
// (ej: confirmed_at seteado con enabled=false) no pueden producirse desde aquí.
package twofactor

import (
	"time"

	"github.com/automly/automotora-api/internal/domain"
)

// Status estado 2FA de un usuario.
type Status string

const (
	StatusDisabled  Status = "NO_2FA"
	StatusPending   Status = "2FA_PENDING"
	StatusConfirmed Status = "2FA_CONFIRMED"
)

// Enrollment estado 2FA observable de un usuario: si ya tiene secreto
// persistido y los dos campos del usuario que se escriben juntos al confirmar.
type Enrollment struct {
	HasSecret   bool
	Enabled     bool
	ConfirmedAt *time.Time
}

// Status deriva el estado a partir de los campos persistidos.
func (e Enrollment) Status() Status {
	if e.Enabled && e.ConfirmedAt != nil {
		return StatusConfirmed
	}
	if e.HasSecret {
		return StatusPending
	}
	return StatusDisabled
}

// Begin transiciona NO_2FA → 2FA_PENDING (se generó y persistió un secreto).
// Desde pendiente o confirmado es un conflicto: hay a lo sumo un secreto por usuario.
func (e Enrollment) Begin() (Enrollment, error) {
	if e.Status() != StatusDisabled {
		return e, domain.ErrConflict
	}
	e.HasSecret = true
	return e, nil
}

// Confirm transiciona 2FA_PENDING → 2FA_CONFIRMED. Setea Enabled y ConfirmedAt
// juntos; la persistencia debe escribir ambos campos en un único UPDATE.
func (e Enrollment) Confirm(now time.Time) (Enrollment, error) {
	if e.Status() != StatusPending {
		return e, domain.ErrConflict
	}
	e.Enabled = true
	e.ConfirmedAt = &now
	return e, nil
}

// BackupCodeState estado de un código de recuperación (ACTIVE → USED, una sola vez).
type BackupCodeState struct {
	Used bool
}

// Consume marca el código como usado. Un código ya usado nunca vuelve a
// satisfacer una recuperación: la segunda invocación falla y el estado no cambia.
func (c BackupCodeState) Consume() (BackupCodeState, error) {
	if c.Used {
		return c, domain.ErrInvalidBackupCode
	}
	c.Used = true
	return c, nil
}
