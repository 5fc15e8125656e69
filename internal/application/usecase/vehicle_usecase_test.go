package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/application/usecase"
	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type mockVehicleRepo struct{ mock.Mock }

func (m *mockVehicleRepo) Create(v *entity.Vehicle) error {
	return m.Called(v).Error(0)
}

func (m *mockVehicleRepo) GetByID(dealerID, id string) (*entity.Vehicle, error) {
	args := m.Called(dealerID, id)
	v, _ := args.Get(0).(*entity.Vehicle)
	return v, args.Error(1)
}

func (m *mockVehicleRepo) Update(dealerID string, v *entity.Vehicle) error {
	return m.Called(dealerID, v).Error(0)
}

func (m *mockVehicleRepo) Deactivate(dealerID, id string) error {
	return m.Called(dealerID, id).Error(0)
}

func (m *mockVehicleRepo) ListByDealer(dealerID string, limit, offset int) ([]*entity.Vehicle, error) {
	args := m.Called(dealerID, limit, offset)
	list, _ := args.Get(0).([]*entity.Vehicle)
	return list, args.Error(1)
}

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) Create(s *entity.VehicleService) error {
	return m.Called(s).Error(0)
}

func (m *mockServiceRepo) GetByID(dealerID, id string) (*entity.VehicleService, error) {
	args := m.Called(dealerID, id)
	s, _ := args.Get(0).(*entity.VehicleService)
	return s, args.Error(1)
}

func (m *mockServiceRepo) Update(dealerID string, s *entity.VehicleService) error {
	return m.Called(dealerID, s).Error(0)
}

func (m *mockServiceRepo) Deactivate(dealerID, id string) error {
	return m.Called(dealerID, id).Error(0)
}

func (m *mockServiceRepo) ListByVehicle(dealerID, vehicleID string) ([]*entity.VehicleService, error) {
	args := m.Called(dealerID, vehicleID)
	list, _ := args.Get(0).([]*entity.VehicleService)
	return list, args.Error(1)
}

func (m *mockServiceRepo) ListByDealer(dealerID string, limit, offset int) ([]*entity.VehicleService, error) {
	args := m.Called(dealerID, limit, offset)
	list, _ := args.Get(0).([]*entity.VehicleService)
	return list, args.Error(1)
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

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	dealerA = "dealer-a"
	dealerB = "dealer-b"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testVehicle(dealerID string) *entity.Vehicle {
	return &entity.Vehicle{
		ID:            "veh-1",
		DealerID:      dealerID,
		Brand:         "Toyota",
		Model:         "Corolla",
		Year:          2020,
		OwnershipType: entity.OwnershipDealer,
		PurchasePrice: dec("10000.00"),
		Currency:      entity.CurrencyUYU,
		IsActive:      true,
	}
}

func dealerService(amount, payer string) *entity.VehicleService {
	return &entity.VehicleService{
		ID:          "svc-" + amount,
		VehicleID:   "veh-1",
		Description: "servicio",
		Amount:      dec(amount),
		Payer:       payer,
		ServiceDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// El create descarta cualquier dealer_id del cliente: el vehículo queda en la
// automotora del caller.
func TestVehicleCreate_ForzaDealerDelCaller(t *testing.T) {
	vehicleRepo := new(mockVehicleRepo)
	uc := usecase.NewVehicleUseCase(vehicleRepo, new(mockServiceRepo), new(mockDealerRepo))

	vehicleRepo.On("Create", mock.MatchedBy(func(v *entity.Vehicle) bool {
		return v.DealerID == dealerA && v.IsActive
	})).Return(nil)

	out, err := uc.Create(dealerA, dto.CreateVehicleRequest{
		Brand:         "Toyota",
		Model:         "Corolla",
		Year:          2020,
		OwnershipType: entity.OwnershipDealer,
		PurchasePrice: dec("10000.00"),
		Currency:      entity.CurrencyUYU,
	})
	require.NoError(t, err)
	assert.Equal(t, dealerA, out.DealerID)
	vehicleRepo.AssertExpectations(t)
}

func TestVehicleCreate_DatosInvalidos(t *testing.T) {
	uc := usecase.NewVehicleUseCase(new(mockVehicleRepo), new(mockServiceRepo), new(mockDealerRepo))

	cases := []struct {
		name string
		in   dto.CreateVehicleRequest
	}{
		{"sin marca", dto.CreateVehicleRequest{Model: "Corolla", Year: 2020, OwnershipType: entity.OwnershipDealer, Currency: entity.CurrencyUYU}},
		{"año cero", dto.CreateVehicleRequest{Brand: "Toyota", Model: "Corolla", OwnershipType: entity.OwnershipDealer, Currency: entity.CurrencyUYU}},
		{"tipo inválido", dto.CreateVehicleRequest{Brand: "Toyota", Model: "Corolla", Year: 2020, OwnershipType: "LEASING", Currency: entity.CurrencyUYU}},
		{"moneda inválida", dto.CreateVehicleRequest{Brand: "Toyota", Model: "Corolla", Year: 2020, OwnershipType: entity.OwnershipDealer, Currency: "EUR"}},
		{"precio negativo", dto.CreateVehicleRequest{Brand: "Toyota", Model: "Corolla", Year: 2020, OwnershipType: entity.OwnershipDealer, PurchasePrice: dec("-1"), Currency: entity.CurrencyUYU}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(dealerA, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Aislamiento de tenant: el caller de la automotora B pregunta por un vehículo
// de la A y el repo (scopeado por firma) responde nil → se comporta como inexistente.
func TestVehicleGetByID_OtroTenantEsInexistente(t *testing.T) {
	vehicleRepo := new(mockVehicleRepo)
	uc := usecase.NewVehicleUseCase(vehicleRepo, new(mockServiceRepo), new(mockDealerRepo))

	vehicleRepo.On("GetByID", dealerB, "veh-1").Return(nil, nil)

	out, err := uc.GetByID(dealerB, "veh-1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// Desglose completo: servicios DEALER suman, OWNER no; margen del dealer aplica.
func TestVehicleGetPricing_DesgloseCompleto(t *testing.T) {
	vehicleRepo := new(mockVehicleRepo)
	serviceRepo := new(mockServiceRepo)
	dealerRepo := new(mockDealerRepo)
	uc := usecase.NewVehicleUseCase(vehicleRepo, serviceRepo, dealerRepo)

	margin := dec("15")
	vehicleRepo.On("GetByID", dealerA, "veh-1").Return(testVehicle(dealerA), nil)
	serviceRepo.On("ListByVehicle", dealerA, "veh-1").Return([]*entity.VehicleService{
		dealerService("500.00", entity.PayerDealer),
		dealerService("300.00", entity.PayerDealer),
		dealerService("1000.00", entity.PayerOwner),
	}, nil)
	dealerRepo.On("GetByID", dealerA).Return(&entity.Dealer{
		ID: dealerA, Name: "Automotora A", RUT: "211234560017",
		DefaultMarginPercentage: &margin, IsActive: true,
	}, nil)

	out, err := uc.GetPricing(dealerA, "veh-1")
	require.NoError(t, err)
	assert.True(t, dec("800.00").Equal(out.TotalServicesCost), "servicios: %s", out.TotalServicesCost)
	assert.True(t, dec("10800.00").Equal(out.TotalCost), "costo total: %s", out.TotalCost)
	assert.True(t, dec("12420.00").Equal(out.SuggestedSalePrice), "precio sugerido: %s", out.SuggestedSalePrice)
}

// Si el dealer no tiene margen configurado el precio sugerido es el costo.
func TestVehicleGetPricing_SinMargenConfigurado(t *testing.T) {
	vehicleRepo := new(mockVehicleRepo)
	serviceRepo := new(mockServiceRepo)
	dealerRepo := new(mockDealerRepo)
	uc := usecase.NewVehicleUseCase(vehicleRepo, serviceRepo, dealerRepo)

	vehicleRepo.On("GetByID", dealerA, "veh-1").Return(testVehicle(dealerA), nil)
	serviceRepo.On("ListByVehicle", dealerA, "veh-1").Return(nil, nil)
	dealerRepo.On("GetByID", dealerA).Return(&entity.Dealer{ID: dealerA, Name: "A", RUT: "1"}, nil)

	out, err := uc.GetPricing(dealerA, "veh-1")
	require.NoError(t, err)
	assert.True(t, out.TotalCost.Equal(out.SuggestedSalePrice))
}

func TestVehicleGetPricing_VehiculoInexistente(t *testing.T) {
	vehicleRepo := new(mockVehicleRepo)
	uc := usecase.NewVehicleUseCase(vehicleRepo, new(mockServiceRepo), new(mockDealerRepo))

	vehicleRepo.On("GetByID", dealerA, "nope").Return(nil, nil)

	_, err := uc.GetPricing(dealerA, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update de un id de otro tenant: el repo no lo resuelve → ErrNotFound.
func TestVehicleUpdate_OtroTenantEsNotFound(t *testing.T) {
	vehicleRepo := new(mockVehicleRepo)
	uc := usecase.NewVehicleUseCase(vehicleRepo, new(mockServiceRepo), new(mockDealerRepo))

	vehicleRepo.On("GetByID", dealerB, "veh-1").Return(nil, nil)

	brand := "Fiat"
	_, err := uc.Update(dealerB, "veh-1", dto.UpdateVehicleRequest{Brand: &brand})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	vehicleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
