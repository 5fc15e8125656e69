// Package auth implementa el registro y el login (password + segundo factor).
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
	"github.com/automly/automotora-api/pkg/config"
	"github.com/automly/automotora-api/pkg/jwt"
)

// SecondFactorVerifier valida el segundo factor de un usuario con 2FA confirmado.
type SecondFactorVerifier interface {
	VerifySecondFactor(userID, totpCode, backupCode string) error
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	userRepo   repository.UserRepository
	dealerRepo repository.DealerRepository
	roleRepo   repository.RoleRepository
	secondFA   SecondFactorVerifier
	jwtCfg     config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, dealerRepo repository.DealerRepository, roleRepo repository.RoleRepository, secondFA SecondFactorVerifier, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		dealerRepo: dealerRepo,
		roleRepo:   roleRepo,
		secondFA:   secondFA,
		jwtCfg:     jwtCfg,
	}
}

// Register da de alta un usuario. DealerID vacío crea un usuario bootstrap de
// plataforma (sin automotora); si viene, la automotora debe existir.
// Username repetido -> ErrUsernameTaken.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DealerID != "" {
		dealer, err := uc.dealerRepo.GetByID(in.DealerID)
		if err != nil {
			return nil, err
		}
		if dealer == nil {
			return nil, domain.ErrNotFound
		}
	}

	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		DealerID:     in.DealerID,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		// carrera entre dos altas con el mismo username: el índice único decide.
		if err == domain.ErrDuplicate {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}
	return toUserResponse(user, nil), nil
}

// Login autentica con username + password. Si el usuario tiene 2FA confirmado
// exige además un código TOTP o uno de recuperación; sin segundo factor el
// login responde RequiresTwoFactor sin emitir token. Credenciales inválidas y
// usuario inexistente son indistinguibles (ErrUnauthorized en ambos casos).
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if user.Is2FAEnabled {
		if in.TOTPCode == "" && in.BackupCode == "" {
			return &dto.LoginResponse{RequiresTwoFactor: true}, nil
		}
		if err := uc.secondFA.VerifySecondFactor(user.ID, in.TOTPCode, in.BackupCode); err != nil {
			return nil, err
		}
	}

	roles, err := uc.roleRepo.ListNamesByUser(user.ID)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.DealerID, roles, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user, roles),
	}, nil
}

func toUserResponse(u *entity.User, roles []string) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                   u.ID,
		DealerID:             u.DealerID,
		Username:             u.Username,
		Email:                u.Email,
		Is2FAEnabled:         u.Is2FAEnabled,
		TwoFactorConfirmedAt: u.TwoFactorConfirmedAt,
		IsActive:             u.IsActive,
		Roles:                roles,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}
