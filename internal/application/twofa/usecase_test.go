package twofa_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/automly/automotora-api/internal/application/twofa"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
	"github.com/automly/automotora-api/internal/domain/twofactor"
	infratotp "github.com/automly/automotora-api/internal/infrastructure/totp"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(u *entity.User) error { return m.Called(u).Error(0) }

func (m *mockUserRepo) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByUsername(username string) (*entity.User, error) {
	args := m.Called(username)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByIDAndDealer(dealerID, id string) (*entity.User, error) {
	args := m.Called(dealerID, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(u *entity.User) error { return m.Called(u).Error(0) }

func (m *mockUserRepo) ConfirmTwoFactor(userID string, confirmedAt time.Time) error {
	return m.Called(userID, confirmedAt).Error(0)
}

func (m *mockUserRepo) ListByDealer(dealerID string, limit, offset int) ([]*entity.User, error) {
	args := m.Called(dealerID, limit, offset)
	list, _ := args.Get(0).([]*entity.User)
	return list, args.Error(1)
}

func (m *mockUserRepo) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type mockTwoFARepo struct{ mock.Mock }

func (m *mockTwoFARepo) CreateSecret(s *entity.User2FASecret) error { return m.Called(s).Error(0) }

func (m *mockTwoFARepo) GetSecretByUser(userID string) (*entity.User2FASecret, error) {
	args := m.Called(userID)
	s, _ := args.Get(0).(*entity.User2FASecret)
	return s, args.Error(1)
}

func (m *mockTwoFARepo) TouchSecretUsed(userID string, usedAt time.Time) error {
	return m.Called(userID, usedAt).Error(0)
}

func (m *mockTwoFARepo) DeleteSecret(userID string) error { return m.Called(userID).Error(0) }

func (m *mockTwoFARepo) AddBackupCodes(userID string, codeHashes []string) error {
	return m.Called(userID, codeHashes).Error(0)
}

func (m *mockTwoFARepo) ConsumeBackupCode(userID, codeHash string) (bool, error) {
	args := m.Called(userID, codeHash)
	return args.Bool(0), args.Error(1)
}

func (m *mockTwoFARepo) CountActiveBackupCodes(userID string) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

// fakeTOTP valida contra un código fijo.
type fakeTOTP struct {
	secret string
	valid  string
}

func (f *fakeTOTP) GenerateSecret(string) (string, string, error) {
	return f.secret, "otpauth://totp/test", nil
}

func (f *fakeTOTP) Validate(code, _ string) bool { return code == f.valid }

// fakeTx ejecuta el callback con los mismos repos del test (sin transacción real).
type fakeTx struct {
	userRepo  repository.UserRepository
	twoFARepo repository.TwoFactorRepository
}

func (f *fakeTx) RunTwoFactor(_ context.Context, fn func(repository.UserRepository, repository.TwoFactorRepository) error) error {
	return fn(f.userRepo, f.twoFARepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const userID = "user-1"

func userWithout2FA() *entity.User {
	return &entity.User{ID: userID, Username: "vendedor", IsActive: true}
}

func userConfirmed() *entity.User {
	now := time.Now()
	return &entity.User{ID: userID, Username: "vendedor", Is2FAEnabled: true, TwoFactorConfirmedAt: &now, IsActive: true}
}

func pendingSecret() *entity.User2FASecret {
	return &entity.User2FASecret{ID: "sec-1", UserID: userID, Secret: "BASE32SECRET"}
}

func newUseCase(userRepo *mockUserRepo, twoFARepo *mockTwoFARepo, totp *fakeTOTP) *twofa.UseCase {
	tx := &fakeTx{userRepo: userRepo, twoFARepo: twoFARepo}
	return twofa.NewUseCase(userRepo, twoFARepo, totp, tx, 8)
}

// ──────────────────────────────────────────────────────────────────────────────
// Enroll
// ──────────────────────────────────────────────────────────────────────────────

func TestEnroll_GeneraYPersisteSecreto(t *testing.T) {
	userRepo := new(mockUserRepo)
	twoFARepo := new(mockTwoFARepo)
	uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{secret: "BASE32SECRET"})

	userRepo.On("GetByID", userID).Return(userWithout2FA(), nil)
	twoFARepo.On("GetSecretByUser", userID).Return(nil, nil)
	twoFARepo.On("CreateSecret", mock.MatchedBy(func(s *entity.User2FASecret) bool {
		return s.UserID == userID && s.Secret == "BASE32SECRET"
	})).Return(nil)

	out, err := uc.Enroll(userID)
	require.NoError(t, err)
	assert.Equal(t, "BASE32SECRET", out.Secret)
	assert.NotEmpty(t, out.OTPURL)
	twoFARepo.AssertExpectations(t)
}

// Con un secreto ya persistido (pendiente o confirmado) el enroll es conflicto.
func TestEnroll_YaEnroladoEsConflicto(t *testing.T) {
	userRepo := new(mockUserRepo)
	twoFARepo := new(mockTwoFARepo)
	uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{secret: "OTRO"})

	userRepo.On("GetByID", userID).Return(userWithout2FA(), nil)
	twoFARepo.On("GetSecretByUser", userID).Return(pendingSecret(), nil)

	_, err := uc.Enroll(userID)
	assert.ErrorIs(t, err, domain.ErrConflict)
	twoFARepo.AssertNotCalled(t, "CreateSecret", mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirm
// ──────────────────────────────────────────────────────────────────────────────

// Código válido: marca al usuario y persiste los hashes de los códigos de
// recuperación; los códigos en plano se devuelven una única vez.
func TestConfirm_CodigoValido(t *testing.T) {
	userRepo := new(mockUserRepo)
	twoFARepo := new(mockTwoFARepo)
	uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{valid: "123456"})

	userRepo.On("GetByID", userID).Return(userWithout2FA(), nil)
	twoFARepo.On("GetSecretByUser", userID).Return(pendingSecret(), nil)
	userRepo.On("ConfirmTwoFactor", userID, mock.AnythingOfType("time.Time")).Return(nil)
	twoFARepo.On("AddBackupCodes", userID, mock.MatchedBy(func(hashes []string) bool {
		return len(hashes) == 8
	})).Return(nil)

	out, err := uc.Confirm(context.Background(), userID, "123456")
	require.NoError(t, err)
	assert.Equal(t, string(twofactor.StatusConfirmed), out.Status)
	require.Len(t, out.BackupCodes, 8)
	// lo devuelto es el plano, no el hash persistido
	for _, code := range out.BackupCodes {
		assert.Len(t, code, 10)
		assert.NotEqual(t, infratotp.HashBackupCode(code), code)
	}
	userRepo.AssertExpectations(t)
	twoFARepo.AssertExpectations(t)
}

func TestConfirm_CodigoInvalido(t *testing.T) {
	userRepo := new(mockUserRepo)
	twoFARepo := new(mockTwoFARepo)
	uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{valid: "123456"})

	userRepo.On("GetByID", userID).Return(userWithout2FA(), nil)
	twoFARepo.On("GetSecretByUser", userID).Return(pendingSecret(), nil)

	_, err := uc.Confirm(context.Background(), userID, "000000")
	assert.ErrorIs(t, err, domain.ErrInvalidTOTPCode)
	userRepo.AssertNotCalled(t, "ConfirmTwoFactor", mock.Anything, mock.Anything)
}

// Confirm sin enrolamiento pendiente (sin secreto o ya confirmado) es conflicto.
func TestConfirm_SinEnrolamientoPendiente(t *testing.T) {
	userRepo := new(mockUserRepo)
	twoFARepo := new(mockTwoFARepo)
	uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{valid: "123456"})

	userRepo.On("GetByID", userID).Return(userWithout2FA(), nil)
	twoFARepo.On("GetSecretByUser", userID).Return(nil, nil)

	_, err := uc.Confirm(context.Background(), userID, "123456")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConfirm_YaConfirmadoEsConflicto(t *testing.T) {
	userRepo := new(mockUserRepo)
	twoFARepo := new(mockTwoFARepo)
	uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{valid: "123456"})

	userRepo.On("GetByID", userID).Return(userConfirmed(), nil)
	twoFARepo.On("GetSecretByUser", userID).Return(pendingSecret(), nil)

	_, err := uc.Confirm(context.Background(), userID, "123456")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ──────────────────────────────────────────────────────────────────────────────
// Status y segundo factor
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_Estados(t *testing.T) {
	t.Run("sin 2FA", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		twoFARepo := new(mockTwoFARepo)
		uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{})

		userRepo.On("GetByID", userID).Return(userWithout2FA(), nil)
		twoFARepo.On("GetSecretByUser", userID).Return(nil, nil)

		out, err := uc.Status(userID)
		require.NoError(t, err)
		assert.Equal(t, string(twofactor.StatusDisabled), out.Status)
		assert.Zero(t, out.ActiveBackupCodes)
	})

	t.Run("confirmado con códigos vigentes", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		twoFARepo := new(mockTwoFARepo)
		uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{})

		userRepo.On("GetByID", userID).Return(userConfirmed(), nil)
		twoFARepo.On("GetSecretByUser", userID).Return(pendingSecret(), nil)
		twoFARepo.On("CountActiveBackupCodes", userID).Return(5, nil)

		out, err := uc.Status(userID)
		require.NoError(t, err)
		assert.Equal(t, string(twofactor.StatusConfirmed), out.Status)
		assert.Equal(t, 5, out.ActiveBackupCodes)
	})
}

func TestVerifySecondFactor_TOTPValido(t *testing.T) {
	userRepo := new(mockUserRepo)
	twoFARepo := new(mockTwoFARepo)
	uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{valid: "654321"})

	twoFARepo.On("GetSecretByUser", userID).Return(pendingSecret(), nil)
	twoFARepo.On("TouchSecretUsed", userID, mock.AnythingOfType("time.Time")).Return(nil)

	assert.NoError(t, uc.VerifySecondFactor(userID, "654321", ""))
	twoFARepo.AssertExpectations(t)
}

// Un código de recuperación ya consumido no satisface otra verificación.
func TestVerifySecondFactor_BackupCodeConsumido(t *testing.T) {
	userRepo := new(mockUserRepo)
	twoFARepo := new(mockTwoFARepo)
	uc := newUseCase(userRepo, twoFARepo, &fakeTOTP{})

	hash := infratotp.HashBackupCode("ABCDEFGHIJ")
	twoFARepo.On("ConsumeBackupCode", userID, hash).Return(false, nil)

	err := uc.VerifySecondFactor(userID, "", "ABCDEFGHIJ")
	assert.ErrorIs(t, err, domain.ErrInvalidBackupCode)
}

func TestVerifySecondFactor_SinSegundoFactor(t *testing.T) {
	uc := newUseCase(new(mockUserRepo), new(mockTwoFARepo), &fakeTOTP{})
	assert.ErrorIs(t, uc.VerifySecondFactor(userID, "", ""), domain.ErrTwoFactorRequired)
}
