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

var _ repository.VehicleServiceRepository = (*VehicleServiceRepo)(nil)

const serviceColumns = `s.id, s.vehicle_id, s.description, s.amount, s.payer, s.service_date, s.is_active, s.created_at, s.updated_at`

// VehicleServiceRepo implementación del puerto VehicleServiceRepository sobre
// PostgreSQL (usable con pool o tx). El scoping por tenant atraviesa el join
// con vehicles: el dealer_id vive en el vehículo dueño del service.
type VehicleServiceRepo struct {
	q Querier
}

// NewVehicleServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleServiceRepository(q Querier) *VehicleServiceRepo {
	return &VehicleServiceRepo{q: q}
}

// Create persiste un service. El vehículo ya fue resuelto dentro del tenant
// por el caso de uso, así que acá no hay join.
func (r *VehicleServiceRepo) Create(service *entity.VehicleService) error {
	query := `
		INSERT INTO vehicle_services (id, vehicle_id, description, amount, payer, service_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		service.ID, service.VehicleID, service.Description, service.Amount, service.Payer,
		service.ServiceDate, service.IsActive, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vehicle service: %w", err)
	}
	return nil
}

// GetByID obtiene un service solo si su vehículo pertenece al tenant.
func (r *VehicleServiceRepo) GetByID(dealerID, id string) (*entity.VehicleService, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM vehicle_services s
		JOIN vehicles v ON v.id = s.vehicle_id
		WHERE s.id = $1 AND v.dealer_id = $2`
	s, err := scanVehicleService(r.q.QueryRow(context.Background(), query, id, dealerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle service: %w", err)
	}
	return s, nil
}

// Update actualiza un service; el WHERE verifica la pertenencia al tenant vía join.
func (r *VehicleServiceRepo) Update(dealerID string, service *entity.VehicleService) error {
	query := `
		UPDATE vehicle_services s
		SET description = $3, amount = $4, payer = $5, service_date = $6, updated_at = $7
		FROM vehicles v
		WHERE s.id = $1 AND s.vehicle_id = v.id AND v.dealer_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		service.ID, dealerID, service.Description, service.Amount, service.Payer,
		service.ServiceDate, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vehicle service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate baja lógica del service dentro del tenant.
func (r *VehicleServiceRepo) Deactivate(dealerID, id string) error {
	query := `
		UPDATE vehicle_services s
		SET is_active = false, updated_at = now()
		FROM vehicles v
		WHERE s.id = $1 AND s.vehicle_id = v.id AND v.dealer_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, id, dealerID)
	if err != nil {
		return fmt.Errorf("deactivate vehicle service: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByVehicle services de un vehículo del tenant, más recientes primero por fecha de service.
func (r *VehicleServiceRepo) ListByVehicle(dealerID, vehicleID string) ([]*entity.VehicleService, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM vehicle_services s
		JOIN vehicles v ON v.id = s.vehicle_id
		WHERE s.vehicle_id = $1 AND v.dealer_id = $2
		ORDER BY s.service_date DESC`
	rows, err := r.q.Query(context.Background(), query, vehicleID, dealerID)
	if err != nil {
		return nil, fmt.Errorf("list services by vehicle: %w", err)
	}
	return collectServices(rows)
}

// ListByDealer todos los services del tenant con paginación.
func (r *VehicleServiceRepo) ListByDealer(dealerID string, limit, offset int) ([]*entity.VehicleService, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM vehicle_services s
		JOIN vehicles v ON v.id = s.vehicle_id
		WHERE v.dealer_id = $1
		ORDER BY s.service_date DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, dealerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return collectServices(rows)
}

func collectServices(rows pgx.Rows) ([]*entity.VehicleService, error) {
	defer rows.Close()
	var list []*entity.VehicleService
	for rows.Next() {
		s, err := scanVehicleService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle service: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanVehicleService(row pgxScanner) (*entity.VehicleService, error) {
	var s entity.VehicleService
	err := row.Scan(
		&s.ID, &s.VehicleID, &s.Description, &s.Amount, &s.Payer,
		&s.ServiceDate, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
