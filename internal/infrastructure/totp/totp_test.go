package totp_test

import (
	"testing"
	"time"

	pqtotp "github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automly/automotora-api/internal/infrastructure/totp"
)

func TestGenerateSecret_SecretoYURL(t *testing.T) {
	svc := totp.NewService("Automotora CRM")

	secret, otpURL, err := svc.GenerateSecret("vendedor@automotora.uy")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.Contains(t, otpURL, "otpauth://totp/")
	assert.Contains(t, otpURL, "Automotora%20CRM")
}

// Un código generado para un instante debe validar en ese mismo instante.
func TestValidateAt_CodigoVigente(t *testing.T) {
	svc := totp.NewService("Automotora CRM")
	secret, _, err := svc.GenerateSecret("user@test")
	require.NoError(t, err)

	at := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	code, err := pqtotp.GenerateCode(secret, at)
	require.NoError(t, err)

	assert.True(t, svc.ValidateAt(code, secret, at))
	assert.False(t, svc.ValidateAt(code, secret, at.Add(5*time.Minute)),
		"un código no debe validar fuera de la ventana")
	assert.False(t, svc.ValidateAt("000000", secret, at))
}

func TestGenerateBackupCodes_PlanoYHash(t *testing.T) {
	plain, hashes, err := totp.GenerateBackupCodes(8)
	require.NoError(t, err)
	require.Len(t, plain, 8)
	require.Len(t, hashes, 8)

	seen := make(map[string]bool)
	for i, code := range plain {
		assert.Len(t, code, 10, "cada código visible tiene 10 caracteres")
		assert.False(t, seen[code], "los códigos no deben repetirse")
		seen[code] = true

		// el hash persistido es determinista respecto del código en plano
		assert.Equal(t, hashes[i], totp.HashBackupCode(code))
		assert.Len(t, hashes[i], 64, "SHA-256 en hex")
		assert.NotEqual(t, code, hashes[i])
	}
}
