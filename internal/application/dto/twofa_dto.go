package dto

// EnrollTwoFactorResponse inicio del enrolamiento 2FA: secreto y URL para el QR.
// El secreto se muestra una única vez; solo el registro persistido se reutiliza.
type EnrollTwoFactorResponse struct {
	Secret string `json:"secret"`
	OTPURL string `json:"otp_url"`
}

// ConfirmTwoFactorRequest confirmación del enrolamiento con un código TOTP vigente.
type ConfirmTwoFactorRequest struct {
	Code string `json:"code"`
}

// ConfirmTwoFactorResponse resultado de la confirmación. BackupCodes en plano,
// visibles solo en esta respuesta; después solo existen sus hashes.
type ConfirmTwoFactorResponse struct {
	Status      string   `json:"status"`
	BackupCodes []string `json:"backup_codes"`
}

// TwoFactorStatusResponse estado 2FA del usuario autenticado.
type TwoFactorStatusResponse struct {
	Status            string `json:"status"` // NO_2FA, 2FA_PENDING, 2FA_CONFIRMED
	ActiveBackupCodes int    `json:"active_backup_codes"`
}
