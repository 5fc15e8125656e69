package twofactor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/twofactor"
)

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestEnrollment_Status(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name string
		e    twofactor.Enrollment
		want twofactor.Status
	}{
		{"sin secreto ni flag", twofactor.Enrollment{}, twofactor.StatusDisabled},
		{"con secreto sin confirmar", twofactor.Enrollment{HasSecret: true}, twofactor.StatusPending},
		{"confirmado", twofactor.Enrollment{HasSecret: true, Enabled: true, ConfirmedAt: &now}, twofactor.StatusConfirmed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.e.Status())
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

// Camino feliz completo: NO_2FA → 2FA_PENDING → 2FA_CONFIRMED.
func TestEnrollment_CicloCompleto(t *testing.T) {
	e := twofactor.Enrollment{}
	require.Equal(t, twofactor.StatusDisabled, e.Status())

	e, err := e.Begin()
	require.NoError(t, err)
	require.Equal(t, twofactor.StatusPending, e.Status())

	now := time.Now()
	e, err = e.Confirm(now)
	require.NoError(t, err)
	assert.Equal(t, twofactor.StatusConfirmed, e.Status())

	// Confirm setea ambos campos juntos, nunca uno solo.
	assert.True(t, e.Enabled)
	require.NotNil(t, e.ConfirmedAt)
	assert.Equal(t, now, *e.ConfirmedAt)
}

// Begin con un secreto ya persistido es conflicto (un secreto por usuario).
func TestEnrollment_BeginDesdePendienteEsConflicto(t *testing.T) {
	e := twofactor.Enrollment{HasSecret: true}

	_, err := e.Begin()
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestEnrollment_BeginDesdeConfirmadoEsConflicto(t *testing.T) {
	now := time.Now()
	e := twofactor.Enrollment{HasSecret: true, Enabled: true, ConfirmedAt: &now}

	_, err := e.Begin()
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Confirm sin enrolamiento pendiente es conflicto.
func TestEnrollment_ConfirmSinPendienteEsConflicto(t *testing.T) {
	_, err := twofactor.Enrollment{}.Confirm(time.Now())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Confirm dos veces no es idempotente: la segunda es conflicto.
func TestEnrollment_ConfirmDosVecesEsConflicto(t *testing.T) {
	e := twofactor.Enrollment{HasSecret: true}
	e, err := e.Confirm(time.Now())
	require.NoError(t, err)

	_, err = e.Confirm(time.Now())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Códigos de recuperación
// ──────────────────────────────────────────────────────────────────────────────

// Un código se consume una única vez: ACTIVE → USED es irreversible.
func TestBackupCodeState_ConsumeUnaSolaVez(t *testing.T) {
	c := twofactor.BackupCodeState{}

	c, err := c.Consume()
	require.NoError(t, err)
	assert.True(t, c.Used)

	_, err = c.Consume()
	assert.ErrorIs(t, err, domain.ErrInvalidBackupCode)
}
