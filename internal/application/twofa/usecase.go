// Package twofa implementa el enrolamiento, la confirmación y la verificación
// del segundo factor (TOTP + códigos de recuperación).
package twofa

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
	"github.com/automly/automotora-api/internal/domain/twofactor"
	"github.com/automly/automotora-api/internal/infrastructure/totp"
)

// TOTPProvider genera secretos y valida códigos TOTP.
type TOTPProvider interface {
	GenerateSecret(accountName string) (secret, otpURL string, err error)
	Validate(code, secret string) bool
}

// TxRunner ejecuta la confirmación 2FA dentro de una transacción: el flag del
// usuario y los códigos de recuperación se escriben juntos o no se escribe nada.
type TxRunner interface {
	RunTwoFactor(ctx context.Context, fn func(userRepo repository.UserRepository, twoFARepo repository.TwoFactorRepository) error) error
}

// UseCase casos de uso 2FA.
type UseCase struct {
	userRepo    repository.UserRepository
	twoFARepo   repository.TwoFactorRepository
	totp        TOTPProvider
	tx          TxRunner
	backupCodes int
}

// NewUseCase construye el caso de uso. backupCodes es la cantidad de códigos
// de recuperación que se emiten al confirmar.
func NewUseCase(userRepo repository.UserRepository, twoFARepo repository.TwoFactorRepository, totpSvc TOTPProvider, tx TxRunner, backupCodes int) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		twoFARepo:   twoFARepo,
		totp:        totpSvc,
		tx:          tx,
		backupCodes: backupCodes,
	}
}

// Enroll inicia el enrolamiento: NO_2FA → 2FA_PENDING. Genera y persiste un
// secreto nuevo y devuelve el secreto y la URL otpauth:// una única vez.
// Con un secreto ya persistido (pendiente o confirmado) -> ErrConflict.
func (uc *UseCase) Enroll(userID string) (*dto.EnrollTwoFactorResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	enrollment, err := uc.enrollmentFor(user)
	if err != nil {
		return nil, err
	}
	if _, err := enrollment.Begin(); err != nil {
		return nil, err
	}

	secret, otpURL, err := uc.totp.GenerateSecret(user.Username)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	record := &entity.User2FASecret{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Secret:    secret,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.twoFARepo.CreateSecret(record); err != nil {
		// carrera entre dos enrolamientos: el índice único decide.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return &dto.EnrollTwoFactorResponse{Secret: secret, OTPURL: otpURL}, nil
}

// Confirm cierra el enrolamiento: 2FA_PENDING → 2FA_CONFIRMED. Valida el
// código contra el secreto pendiente y, en una única transacción, marca al
// usuario como 2FA habilitado y persiste los hashes de los códigos de
// recuperación. Los códigos en plano se devuelven aquí y nunca más.
func (uc *UseCase) Confirm(ctx context.Context, userID, code string) (*dto.ConfirmTwoFactorResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	enrollment, err := uc.enrollmentFor(user)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if _, err := enrollment.Confirm(now); err != nil {
		return nil, err
	}

	secret, err := uc.twoFARepo.GetSecretByUser(userID)
	if err != nil {
		return nil, err
	}
	if secret == nil {
		return nil, domain.ErrConflict
	}
	if !uc.totp.Validate(code, secret.Secret) {
		return nil, domain.ErrInvalidTOTPCode
	}

	plain, hashes, err := totp.GenerateBackupCodes(uc.backupCodes)
	if err != nil {
		return nil, err
	}
	err = uc.tx.RunTwoFactor(ctx, func(userRepo repository.UserRepository, twoFARepo repository.TwoFactorRepository) error {
		if err := userRepo.ConfirmTwoFactor(userID, now); err != nil {
			return err
		}
		return twoFARepo.AddBackupCodes(userID, hashes)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ConfirmTwoFactorResponse{
		Status:      string(twofactor.StatusConfirmed),
		BackupCodes: plain,
	}, nil
}

// Status estado 2FA del usuario y cantidad de códigos de recuperación vigentes.
func (uc *UseCase) Status(userID string) (*dto.TwoFactorStatusResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	enrollment, err := uc.enrollmentFor(user)
	if err != nil {
		return nil, err
	}
	active := 0
	if enrollment.Status() == twofactor.StatusConfirmed {
		active, err = uc.twoFARepo.CountActiveBackupCodes(userID)
		if err != nil {
			return nil, err
		}
	}
	return &dto.TwoFactorStatusResponse{
		Status:            string(enrollment.Status()),
		ActiveBackupCodes: active,
	}, nil
}

// VerifySecondFactor valida el segundo factor durante el login: primero el
// código TOTP si vino, si no un código de recuperación (que se consume de
// forma irreversible). Sin ninguno de los dos -> ErrTwoFactorRequired.
func (uc *UseCase) VerifySecondFactor(userID, totpCode, backupCode string) error {
	switch {
	case totpCode != "":
		secret, err := uc.twoFARepo.GetSecretByUser(userID)
		if err != nil {
			return err
		}
		if secret == nil {
			return domain.ErrInvalidTOTPCode
		}
		if !uc.totp.Validate(totpCode, secret.Secret) {
			return domain.ErrInvalidTOTPCode
		}
		if err := uc.twoFARepo.TouchSecretUsed(userID, time.Now()); err != nil {
			return err
		}
		return nil
	case backupCode != "":
		ok, err := uc.twoFARepo.ConsumeBackupCode(userID, totp.HashBackupCode(backupCode))
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInvalidBackupCode
		}
		return nil
	default:
		return domain.ErrTwoFactorRequired
	}
}

// enrollmentFor arma el estado 2FA observable del usuario.
func (uc *UseCase) enrollmentFor(user *entity.User) (twofactor.Enrollment, error) {
	secret, err := uc.twoFARepo.GetSecretByUser(user.ID)
	if err != nil {
		return twofactor.Enrollment{}, err
	}
	return twofactor.Enrollment{
		HasSecret:   secret != nil,
		Enabled:     user.Is2FAEnabled,
		ConfirmedAt: user.TwoFactorConfirmedAt,
	}, nil
}
