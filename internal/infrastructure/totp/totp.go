// Package totp adapta la librería pquerna/otp para el enrolamiento y la
// verificación del segundo factor, y genera los códigos de recuperación.
package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const backupCodeLength = 10 // largo visible de cada código de recuperación

// Service genera secretos TOTP y valida códigos.
type Service struct {
	issuer string
}

// NewService construye el adaptador. issuer es el nombre que muestra la app autenticadora.
func NewService(issuer string) *Service {
	return &Service{issuer: issuer}
}

// GenerateSecret crea un secreto TOTP nuevo y devuelve el secreto base32 y la
// URL otpauth:// para el QR de enrolamiento.
func (s *Service) GenerateSecret(accountName string) (secret, otpURL string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: accountName,
		Period:      30,
		SecretSize:  32,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", fmt.Errorf("generar secreto TOTP: %w", err)
	}
	return key.Secret(), key.URL(), nil
}

// Validate verifica un código de 6 dígitos contra el secreto (ventana estándar de 30s).
func (s *Service) Validate(code, secret string) bool {
	return totp.Validate(code, secret)
}

// ValidateAt igual que Validate pero contra un instante dado (tests).
func (s *Service) ValidateAt(code, secret string, t time.Time) bool {
	ok, _ := totp.ValidateCustom(code, secret, t, totp.ValidateOpts{
		Period:    30,
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	return ok
}

// GenerateBackupCodes genera n códigos de recuperación: el plano (se muestra
// una única vez al usuario) y su hash SHA-256 en hex (lo único que se persiste).
func GenerateBackupCodes(n int) (plain []string, hashes []string, err error) {
	plain = make([]string, 0, n)
	hashes = make([]string, 0, n)
	for i := 0; i < n; i++ {
		b := make([]byte, backupCodeLength)
		if _, err := rand.Read(b); err != nil {
			return nil, nil, fmt.Errorf("generar código de recuperación: %w", err)
		}
		code := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b)
		if len(code) > backupCodeLength {
			code = code[:backupCodeLength]
		}
		plain = append(plain, code)
		hashes = append(hashes, HashBackupCode(code))
	}
	return plain, hashes, nil
}

// HashBackupCode hash SHA-256 hex de un código de recuperación.
func HashBackupCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
