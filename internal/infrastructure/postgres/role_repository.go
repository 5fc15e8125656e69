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

var _ repository.RoleRepository = (*RoleRepo)(nil)

const roleColumns = `id, dealer_id, name, description, created_at, updated_at`

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL (usable con pool o tx).
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste un rol. (dealer, name) duplicado -> ErrDuplicate.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, dealer_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		role.ID, role.DealerID, role.Name, role.Description, role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol dentro del tenant.
func (r *RoleRepo) GetByID(dealerID, id string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1 AND dealer_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, dealerID))
}

// GetByName obtiene un rol por nombre dentro del tenant.
func (r *RoleRepo) GetByName(dealerID, name string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE dealer_id = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, dealerID, name))
}

// ListByDealer lista roles del tenant.
func (r *RoleRepo) ListByDealer(dealerID string, limit, offset int) ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE dealer_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, dealerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// Delete borra un rol del tenant (cascada elimina sus user_roles).
func (r *RoleRepo) Delete(dealerID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM roles WHERE id = $1 AND dealer_id = $2`, id, dealerID)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AssignToUser crea la fila (user, role). El INSERT exige que rol y usuario
// pertenezcan al tenant; si no matchea, la asignación resuelve como not found.
func (r *RoleRepo) AssignToUser(dealerID string, userRole *entity.UserRole) error {
	query := `
		INSERT INTO user_roles (id, user_id, role_id, created_at, updated_at)
		SELECT $1, u.id, ro.id, $4, $5
		FROM users u
		JOIN roles ro ON ro.id = $3 AND ro.dealer_id = $2
		WHERE u.id = $6 AND u.dealer_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		userRole.ID, dealerID, userRole.RoleID, userRole.CreatedAt, userRole.UpdatedAt, userRole.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("assign role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RevokeFromUser elimina la fila (user, role) dentro del tenant.
func (r *RoleRepo) RevokeFromUser(dealerID, userID, roleID string) error {
	query := `
		DELETE FROM user_roles ur
		USING roles ro
		WHERE ur.role_id = ro.id AND ro.dealer_id = $1 AND ur.user_id = $2 AND ur.role_id = $3`
	cmd, err := r.q.Exec(context.Background(), query, dealerID, userID, roleID)
	if err != nil {
		return fmt.Errorf("revoke role: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser roles asignados a un usuario del tenant.
func (r *RoleRepo) ListByUser(dealerID, userID string) ([]*entity.Role, error) {
	query := `
		SELECT ro.id, ro.dealer_id, ro.name, ro.description, ro.created_at, ro.updated_at
		FROM roles ro
		JOIN user_roles ur ON ur.role_id = ro.id
		WHERE ur.user_id = $1 AND ro.dealer_id = $2
		ORDER BY ro.name`
	rows, err := r.q.Query(context.Background(), query, userID, dealerID)
	if err != nil {
		return nil, fmt.Errorf("list user roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// ListNamesByUser nombres de rol del usuario (claims JWT en el login).
func (r *RoleRepo) ListNamesByUser(userID string) ([]string, error) {
	query := `
		SELECT ro.name FROM roles ro
		JOIN user_roles ur ON ur.role_id = ro.id
		WHERE ur.user_id = $1
		ORDER BY ro.name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list role names: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *RoleRepo) scanOne(row pgx.Row) (*entity.Role, error) {
	role, err := scanRole(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func scanRole(row pgxScanner) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(&role.ID, &role.DealerID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &role, nil
}
