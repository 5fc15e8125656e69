package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/automly/automotora-api/internal/application/twofa"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// Ensure TxRunner implements twofa.TxRunner.
var _ twofa.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunTwoFactor inicia una transacción con los repos de usuario y 2FA y hace
// Commit o Rollback. La confirmación 2FA escribe el usuario y los códigos de
// recuperación como un solo efecto: o queda todo, o no queda nada.
func (r *TxRunner) RunTwoFactor(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	twoFARepo repository.TwoFactorRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	twoFARepo := NewTwoFactorRepository(tx)

	if err := fn(userRepo, twoFARepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
