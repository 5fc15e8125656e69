package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/automly/automotora-api/internal/application/auth"
	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
	"github.com/automly/automotora-api/pkg/config"
	pkgjwt "github.com/automly/automotora-api/pkg/jwt"
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

type mockDealerRepo struct{ mock.Mock }

func (m *mockDealerRepo) Create(d *entity.Dealer) error { return m.Called(d).Error(0) }

func (m *mockDealerRepo) GetByID(id string) (*entity.Dealer, error) {
	args := m.Called(id)
	d, _ := args.Get(0).(*entity.Dealer)
	return d, args.Error(1)
}

func (m *mockDealerRepo) GetByRUT(rut string) (*entity.Dealer, error) {
	args := m.Called(rut)
	d, _ := args.Get(0).(*entity.Dealer)
	return d, args.Error(1)
}

func (m *mockDealerRepo) Update(d *entity.Dealer) error { return m.Called(d).Error(0) }

func (m *mockDealerRepo) Deactivate(id string) error { return m.Called(id).Error(0) }

func (m *mockDealerRepo) List(filter repository.DealerListFilter, limit, offset int) ([]*entity.Dealer, error) {
	args := m.Called(filter, limit, offset)
	list, _ := args.Get(0).([]*entity.Dealer)
	return list, args.Error(1)
}

func (m *mockDealerRepo) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type mockRoleRepo struct{ mock.Mock }

func (m *mockRoleRepo) Create(r *entity.Role) error { return m.Called(r).Error(0) }

func (m *mockRoleRepo) GetByID(dealerID, id string) (*entity.Role, error) {
	args := m.Called(dealerID, id)
	r, _ := args.Get(0).(*entity.Role)
	return r, args.Error(1)
}

func (m *mockRoleRepo) GetByName(dealerID, name string) (*entity.Role, error) {
	args := m.Called(dealerID, name)
	r, _ := args.Get(0).(*entity.Role)
	return r, args.Error(1)
}

func (m *mockRoleRepo) ListByDealer(dealerID string, limit, offset int) ([]*entity.Role, error) {
	args := m.Called(dealerID, limit, offset)
	list, _ := args.Get(0).([]*entity.Role)
	return list, args.Error(1)
}

func (m *mockRoleRepo) Delete(dealerID, id string) error { return m.Called(dealerID, id).Error(0) }

func (m *mockRoleRepo) AssignToUser(dealerID string, ur *entity.UserRole) error {
	return m.Called(dealerID, ur).Error(0)
}

func (m *mockRoleRepo) RevokeFromUser(dealerID, userID, roleID string) error {
	return m.Called(dealerID, userID, roleID).Error(0)
}

func (m *mockRoleRepo) ListByUser(dealerID, userID string) ([]*entity.Role, error) {
	args := m.Called(dealerID, userID)
	list, _ := args.Get(0).([]*entity.Role)
	return list, args.Error(1)
}

func (m *mockRoleRepo) ListNamesByUser(userID string) ([]string, error) {
	args := m.Called(userID)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type mockSecondFactor struct{ mock.Mock }

func (m *mockSecondFactor) VerifySecondFactor(userID, totpCode, backupCode string) error {
	return m.Called(userID, totpCode, backupCode).Error(0)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "automotora-test"}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func activeUser(t *testing.T, password string, twoFA bool) *entity.User {
	u := &entity.User{
		ID:           "user-1",
		DealerID:     "dealer-a",
		Username:     "vendedor",
		Email:        "vendedor@test",
		PasswordHash: hashOf(t, password),
		Is2FAEnabled: twoFA,
		IsActive:     true,
	}
	if twoFA {
		now := time.Now()
		u.TwoFactorConfirmedAt = &now
	}
	return u
}

func newAuth(userRepo *mockUserRepo, dealerRepo *mockDealerRepo, roleRepo *mockRoleRepo, sfa *mockSecondFactor) *auth.UseCase {
	return auth.NewUseCase(userRepo, dealerRepo, roleRepo, sfa, testJWT)
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_OK(t *testing.T) {
	userRepo := new(mockUserRepo)
	dealerRepo := new(mockDealerRepo)
	uc := newAuth(userRepo, dealerRepo, new(mockRoleRepo), new(mockSecondFactor))

	dealerRepo.On("GetByID", "dealer-a").Return(&entity.Dealer{ID: "dealer-a", Name: "A", RUT: "1", IsActive: true}, nil)
	userRepo.On("GetByUsername", "nuevo").Return(nil, nil)
	userRepo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		// nunca se persiste el password en plano
		return u.DealerID == "dealer-a" && u.PasswordHash != "secreta123" && u.IsActive
	})).Return(nil)

	out, err := uc.Register(dto.RegisterRequest{
		Username: "nuevo", Email: "nuevo@test", Password: "secreta123", DealerID: "dealer-a",
	})
	require.NoError(t, err)
	assert.Equal(t, "nuevo", out.Username)
	userRepo.AssertExpectations(t)
}

func TestRegister_UsernameTomado(t *testing.T) {
	userRepo := new(mockUserRepo)
	uc := newAuth(userRepo, new(mockDealerRepo), new(mockRoleRepo), new(mockSecondFactor))

	userRepo.On("GetByUsername", "vendedor").Return(activeUser(t, "x", false), nil)

	_, err := uc.Register(dto.RegisterRequest{Username: "vendedor", Email: "v@test", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestRegister_DealerInexistente(t *testing.T) {
	userRepo := new(mockUserRepo)
	dealerRepo := new(mockDealerRepo)
	uc := newAuth(userRepo, dealerRepo, new(mockRoleRepo), new(mockSecondFactor))

	dealerRepo.On("GetByID", "nope").Return(nil, nil)

	_, err := uc.Register(dto.RegisterRequest{Username: "u", Email: "u@test", Password: "p", DealerID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Registro bootstrap: sin dealer asociado, no se consulta el repo de dealers.
func TestRegister_BootstrapSinDealer(t *testing.T) {
	userRepo := new(mockUserRepo)
	dealerRepo := new(mockDealerRepo)
	uc := newAuth(userRepo, dealerRepo, new(mockRoleRepo), new(mockSecondFactor))

	userRepo.On("GetByUsername", "admin").Return(nil, nil)
	userRepo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		return u.DealerID == ""
	})).Return(nil)

	_, err := uc.Register(dto.RegisterRequest{Username: "admin", Email: "a@test", Password: "p"})
	require.NoError(t, err)
	dealerRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_SinDosFactores(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	uc := newAuth(userRepo, new(mockDealerRepo), roleRepo, new(mockSecondFactor))

	userRepo.On("GetByUsername", "vendedor").Return(activeUser(t, "secreta123", false), nil)
	roleRepo.On("ListNamesByUser", "user-1").Return([]string{entity.RoleSales}, nil)

	out, err := uc.Login(dto.LoginRequest{Username: "vendedor", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "dealer-a", claims.DealerID)
	assert.Equal(t, []string{entity.RoleSales}, claims.Roles)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	userRepo := new(mockUserRepo)
	uc := newAuth(userRepo, new(mockDealerRepo), new(mockRoleRepo), new(mockSecondFactor))

	userRepo.On("GetByUsername", "vendedor").Return(activeUser(t, "secreta123", false), nil)

	_, err := uc.Login(dto.LoginRequest{Username: "vendedor", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inexistente y password incorrecta son indistinguibles.
func TestLogin_UsuarioInexistente(t *testing.T) {
	userRepo := new(mockUserRepo)
	uc := newAuth(userRepo, new(mockDealerRepo), new(mockRoleRepo), new(mockSecondFactor))

	userRepo.On("GetByUsername", "fantasma").Return(nil, nil)

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	userRepo := new(mockUserRepo)
	uc := newAuth(userRepo, new(mockDealerRepo), new(mockRoleRepo), new(mockSecondFactor))

	u := activeUser(t, "secreta123", false)
	u.IsActive = false
	userRepo.On("GetByUsername", "vendedor").Return(u, nil)

	_, err := uc.Login(dto.LoginRequest{Username: "vendedor", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Con 2FA confirmado y password correcta pero sin segundo factor: sin token,
// el cliente debe repetir el login con totp_code o backup_code.
func TestLogin_Con2FARequiereSegundoFactor(t *testing.T) {
	userRepo := new(mockUserRepo)
	sfa := new(mockSecondFactor)
	uc := newAuth(userRepo, new(mockDealerRepo), new(mockRoleRepo), sfa)

	userRepo.On("GetByUsername", "vendedor").Return(activeUser(t, "secreta123", true), nil)

	out, err := uc.Login(dto.LoginRequest{Username: "vendedor", Password: "secreta123"})
	require.NoError(t, err)
	assert.True(t, out.RequiresTwoFactor)
	assert.Empty(t, out.Token)
	sfa.AssertNotCalled(t, "VerifySecondFactor", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Con2FAYCodigoValido(t *testing.T) {
	userRepo := new(mockUserRepo)
	roleRepo := new(mockRoleRepo)
	sfa := new(mockSecondFactor)
	uc := newAuth(userRepo, new(mockDealerRepo), roleRepo, sfa)

	userRepo.On("GetByUsername", "vendedor").Return(activeUser(t, "secreta123", true), nil)
	sfa.On("VerifySecondFactor", "user-1", "123456", "").Return(nil)
	roleRepo.On("ListNamesByUser", "user-1").Return([]string{entity.RoleOwner}, nil)

	out, err := uc.Login(dto.LoginRequest{Username: "vendedor", Password: "secreta123", TOTPCode: "123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.False(t, out.RequiresTwoFactor)
}

func TestLogin_Con2FAYCodigoInvalido(t *testing.T) {
	userRepo := new(mockUserRepo)
	sfa := new(mockSecondFactor)
	uc := newAuth(userRepo, new(mockDealerRepo), new(mockRoleRepo), sfa)

	userRepo.On("GetByUsername", "vendedor").Return(activeUser(t, "secreta123", true), nil)
	sfa.On("VerifySecondFactor", "user-1", "000000", "").Return(domain.ErrInvalidTOTPCode)

	_, err := uc.Login(dto.LoginRequest{Username: "vendedor", Password: "secreta123", TOTPCode: "000000"})
	assert.ErrorIs(t, err, domain.ErrInvalidTOTPCode)
}
