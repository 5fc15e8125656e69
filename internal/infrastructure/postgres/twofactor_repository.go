package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

var _ repository.TwoFactorRepository = (*TwoFactorRepo)(nil)

// TwoFactorRepo implementación del puerto TwoFactorRepository sobre PostgreSQL
// (usable con pool o tx).
type TwoFactorRepo struct {
	q Querier
}

// NewTwoFactorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTwoFactorRepository(q Querier) *TwoFactorRepo {
	return &TwoFactorRepo{q: q}
}

// CreateSecret persiste el secreto TOTP. El UNIQUE(user_id) de la tabla
// garantiza a lo sumo un secreto por usuario -> ErrDuplicate.
func (r *TwoFactorRepo) CreateSecret(secret *entity.User2FASecret) error {
	query := `
		INSERT INTO user_2fa_secrets (id, user_id, secret, last_used_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		secret.ID, secret.UserID, secret.Secret, secret.LastUsedAt, secret.CreatedAt, secret.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert 2fa secret: %w", err)
	}
	return nil
}

// GetSecretByUser obtiene el secreto TOTP del usuario; nil si no tiene.
func (r *TwoFactorRepo) GetSecretByUser(userID string) (*entity.User2FASecret, error) {
	query := `
		SELECT id, user_id, secret, last_used_at, created_at, updated_at
		FROM user_2fa_secrets WHERE user_id = $1`
	var s entity.User2FASecret
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&s.ID, &s.UserID, &s.Secret, &s.LastUsedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get 2fa secret: %w", err)
	}
	return &s, nil
}

// TouchSecretUsed registra el último uso exitoso del secreto (telemetría).
func (r *TwoFactorRepo) TouchSecretUsed(userID string, usedAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE user_2fa_secrets SET last_used_at = $2, updated_at = now() WHERE user_id = $1`,
		userID, usedAt)
	if err != nil {
		return fmt.Errorf("touch 2fa secret: %w", err)
	}
	return nil
}

// DeleteSecret elimina el secreto (abandono de un enrolamiento pendiente).
func (r *TwoFactorRepo) DeleteSecret(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM user_2fa_secrets WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete 2fa secret: %w", err)
	}
	return nil
}

// AddBackupCodes inserta los hashes de los códigos de recuperación. Se invoca
// dentro de la tx de confirmación, así que el lote queda visible de una sola vez.
func (r *TwoFactorRepo) AddBackupCodes(userID string, codeHashes []string) error {
	const q = `
		INSERT INTO user_2fa_backup_codes (id, user_id, code_hash, is_used, created_at, updated_at)
		VALUES ($1, $2, $3, false, now(), now())`
	for _, hash := range codeHashes {
		if _, err := r.q.Exec(context.Background(), q, uuid.New().String(), userID, hash); err != nil {
			return fmt.Errorf("insert backup code: %w", err)
		}
	}
	return nil
}

// ConsumeBackupCode marca un código activo como usado en un único UPDATE.
// ACTIVE → USED es irreversible: el WHERE is_used = false hace que un código
// ya consumido (o un hash inexistente) devuelva false sin distinción.
func (r *TwoFactorRepo) ConsumeBackupCode(userID, codeHash string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE user_2fa_backup_codes
		 SET is_used = true, updated_at = now()
		 WHERE user_id = $1 AND code_hash = $2 AND is_used = false`,
		userID, codeHash)
	if err != nil {
		return false, fmt.Errorf("consume backup code: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// CountActiveBackupCodes códigos aún no usados del usuario.
func (r *TwoFactorRepo) CountActiveBackupCodes(userID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM user_2fa_backup_codes WHERE user_id = $1 AND is_used = false`,
		userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count backup codes: %w", err)
	}
	return n, nil
}
