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

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

const vehicleColumns = `id, dealer_id, brand, model, year, ownership_type, purchase_price, currency, is_active, created_at, updated_at`

// VehicleRepo implementación del puerto VehicleRepository sobre PostgreSQL
// (usable con pool o tx). Toda query lleva dealer_id en el WHERE: una fila de
// otra automotora es indistinguible de una inexistente.
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// Create persiste un vehículo. DealerID ya viene forzado al tenant del caller.
func (r *VehicleRepo) Create(vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, dealer_id, brand, model, year, ownership_type, purchase_price, currency, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		vehicle.ID, vehicle.DealerID, vehicle.Brand, vehicle.Model, vehicle.Year,
		vehicle.OwnershipType, vehicle.PurchasePrice, vehicle.Currency, vehicle.IsActive,
		vehicle.CreatedAt, vehicle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo del tenant. Id ajeno -> nil (no existe).
func (r *VehicleRepo) GetByID(dealerID, id string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND dealer_id = $2`
	v, err := scanVehicle(r.q.QueryRow(context.Background(), query, id, dealerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return v, nil
}

// Update actualiza un vehículo dentro del tenant.
func (r *VehicleRepo) Update(dealerID string, vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET brand = $3, model = $4, year = $5, ownership_type = $6, purchase_price = $7, currency = $8, updated_at = $9
		WHERE id = $1 AND dealer_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		vehicle.ID, dealerID, vehicle.Brand, vehicle.Model, vehicle.Year,
		vehicle.OwnershipType, vehicle.PurchasePrice, vehicle.Currency, vehicle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate baja lógica del vehículo dentro del tenant.
func (r *VehicleRepo) Deactivate(dealerID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE vehicles SET is_active = false, updated_at = now() WHERE id = $1 AND dealer_id = $2`,
		id, dealerID)
	if err != nil {
		return fmt.Errorf("deactivate vehicle: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByDealer vehículos del tenant, más recientes primero.
func (r *VehicleRepo) ListByDealer(dealerID string, limit, offset int) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE dealer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, dealerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanVehicle(row pgxScanner) (*entity.Vehicle, error) {
	var v entity.Vehicle
	err := row.Scan(
		&v.ID, &v.DealerID, &v.Brand, &v.Model, &v.Year, &v.OwnershipType,
		&v.PurchasePrice, &v.Currency, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
