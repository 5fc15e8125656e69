package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

var _ repository.DealerRepository = (*DealerRepo)(nil)

const dealerColumns = `id, name, rut, phone, whatsapp, email, default_margin_percentage, is_active, created_at, updated_at`

// DealerRepo implementación del puerto DealerRepository sobre PostgreSQL (usable con pool o tx).
type DealerRepo struct {
	q Querier
}

// NewDealerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDealerRepository(q Querier) *DealerRepo {
	return &DealerRepo{q: q}
}

// Create persiste una nueva automotora. RUT duplicado -> ErrDuplicate.
func (r *DealerRepo) Create(dealer *entity.Dealer) error {
	query := `
		INSERT INTO dealers (id, name, rut, phone, whatsapp, email, default_margin_percentage, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		dealer.ID, dealer.Name, dealer.RUT, dealer.Phone, dealer.WhatsApp, dealer.Email,
		dealer.DefaultMarginPercentage, dealer.IsActive, dealer.CreatedAt, dealer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert dealer: %w", err)
	}
	return nil
}

// GetByID obtiene una automotora por ID.
func (r *DealerRepo) GetByID(id string) (*entity.Dealer, error) {
	query := `SELECT ` + dealerColumns + ` FROM dealers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByRUT obtiene una automotora por RUT (único global).
func (r *DealerRepo) GetByRUT(rut string) (*entity.Dealer, error) {
	query := `SELECT ` + dealerColumns + ` FROM dealers WHERE rut = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, rut))
}

// Update actualiza los datos de contacto y margen de la automotora.
func (r *DealerRepo) Update(dealer *entity.Dealer) error {
	query := `
		UPDATE dealers
		SET name = $2, rut = $3, phone = $4, whatsapp = $5, email = $6,
		    default_margin_percentage = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		dealer.ID, dealer.Name, dealer.RUT, dealer.Phone, dealer.WhatsApp, dealer.Email,
		dealer.DefaultMarginPercentage, dealer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update dealer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate baja lógica: is_active=false. Nunca borra la fila.
func (r *DealerRepo) Deactivate(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE dealers SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate dealer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista automotoras con búsqueda (name/rut/email), filtro de activas y paginación.
func (r *DealerRepo) List(filter repository.DealerListFilter, limit, offset int) ([]*entity.Dealer, error) {
	query := `SELECT ` + dealerColumns + ` FROM dealers WHERE 1=1`
	args := []any{}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := fmt.Sprintf("$%d", len(args))
		query += ` AND (name ILIKE ` + n + ` OR rut ILIKE ` + n + ` OR email ILIKE ` + n + `)`
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		query += fmt.Sprintf(` AND is_active = $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dealers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dealer
	for rows.Next() {
		d, err := scanDealer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dealer: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Count total de automotoras (dashboard).
func (r *DealerRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM dealers`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count dealers: %w", err)
	}
	return n, nil
}

func (r *DealerRepo) scanOne(row pgx.Row) (*entity.Dealer, error) {
	d, err := scanDealer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dealer: %w", err)
	}
	return d, nil
}

func scanDealer(row pgxScanner) (*entity.Dealer, error) {
	var d entity.Dealer
	err := row.Scan(
		&d.ID, &d.Name, &d.RUT, &d.Phone, &d.WhatsApp, &d.Email,
		&d.DefaultMarginPercentage, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
