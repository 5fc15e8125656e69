package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, dealer_id, username, email, password_hash, is_2fa_enabled, two_factor_confirmed_at, is_active, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
// dealer_id se persiste como NULL cuando el usuario es bootstrap (sin automotora).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Username duplicado -> ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, dealer_id, username, email, password_hash, is_2fa_enabled, two_factor_confirmed_at, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, nullIfEmpty(user.DealerID), user.Username, user.Email, user.PasswordHash,
		user.Is2FAEnabled, user.TwoFactorConfirmedAt, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID (sin scope; uso interno de auth).
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByUsername obtiene un usuario por username (login, pre-tenant).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, username))
}

// GetByIDAndDealer resuelve el usuario solo dentro del tenant; un id ajeno se
// comporta como inexistente.
func (r *UserRepo) GetByIDAndDealer(dealerID, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND dealer_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, dealerID))
}

// Update actualiza email, estado y asociación de automotora.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET dealer_id = $2, email = $3, password_hash = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		user.ID, nullIfEmpty(user.DealerID), user.Email, user.PasswordHash, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ConfirmTwoFactor escribe los dos campos de la confirmación 2FA en un único
// UPDATE: nunca puede quedar visible un estado intermedio con uno solo seteado.
func (r *UserRepo) ConfirmTwoFactor(userID string, confirmedAt time.Time) error {
	query := `
		UPDATE users
		SET is_2fa_enabled = true, two_factor_confirmed_at = $2, updated_at = now()
		WHERE id = $1 AND is_2fa_enabled = false`
	cmd, err := r.q.Exec(context.Background(), query, userID, confirmedAt)
	if err != nil {
		return fmt.Errorf("confirm 2fa: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrConflict // ya confirmado o usuario inexistente
	}
	return nil
}

// ListByDealer lista usuarios del tenant con paginación.
func (r *UserRepo) ListByDealer(dealerID string, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE dealer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, dealerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Count total de usuarios (dashboard).
func (r *UserRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepo) scanOne(row pgx.Row) (*entity.User, error) {
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(row pgxScanner) (*entity.User, error) {
	var u entity.User
	var dealerID *string
	err := row.Scan(
		&u.ID, &dealerID, &u.Username, &u.Email, &u.PasswordHash,
		&u.Is2FAEnabled, &u.TwoFactorConfirmedAt, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dealerID != nil {
		u.DealerID = *dealerID
	}
	return &u, nil
}

// nullIfEmpty persiste "" como NULL (FK opcional de bootstrap).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
