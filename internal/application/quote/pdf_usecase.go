// Package quote genera la ficha de precio (PDF) de un vehículo: datos del
// vehículo, servicios realizados y el desglose de costos y precio sugerido.
package quote

import (
	"context"
	"fmt"
	"time"

	"github.com/automly/automotora-api/internal/domain"
	"github.com/automly/automotora-api/internal/domain/pricing"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// PDFUseCase arma la ficha de precio de un vehículo del tenant.
type PDFUseCase struct {
	vehicleRepo repository.VehicleRepository
	serviceRepo repository.VehicleServiceRepository
	dealerRepo  repository.DealerRepository
	generator   PriceSheetGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	vehicleRepo repository.VehicleRepository,
	serviceRepo repository.VehicleServiceRepository,
	dealerRepo repository.DealerRepository,
	generator PriceSheetGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		vehicleRepo: vehicleRepo,
		serviceRepo: serviceRepo,
		dealerRepo:  dealerRepo,
		generator:   generator,
	}
}

// DownloadPriceSheet carga el vehículo dentro del tenant del caller, sus
// servicios y la automotora, calcula el desglose de precios y genera el PDF.
// Un vehículo de otra automotora se comporta como inexistente.
func (uc *PDFUseCase) DownloadPriceSheet(ctx context.Context, dealerID, vehicleID string) (pdfBytes []byte, filename string, err error) {
	vehicle, err := uc.vehicleRepo.GetByID(dealerID, vehicleID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: obtener vehículo: %w", err)
	}
	if vehicle == nil {
		return nil, "", domain.ErrNotFound
	}

	services, err := uc.serviceRepo.ListByVehicle(dealerID, vehicleID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: obtener servicios: %w", err)
	}

	dealer, err := uc.dealerRepo.GetByID(dealerID)
	if err != nil {
		return nil, "", fmt.Errorf("ficha: obtener automotora: %w", err)
	}
	if dealer == nil {
		return nil, "", domain.ErrNotFound
	}

	data := &PriceSheetData{
		Dealer:             dealer,
		Vehicle:            vehicle,
		Services:           services,
		TotalServicesCost:  pricing.TotalServicesCost(services),
		TotalCost:          pricing.TotalCost(vehicle, services),
		SuggestedSalePrice: pricing.SuggestedSalePrice(vehicle, services, dealer.DefaultMarginPercentage),
		GeneratedAt:        time.Now(),
	}

	pdfBytes, err = uc.generator.GeneratePriceSheet(ctx, data)
	if err != nil {
		return nil, "", err
	}
	filename = fmt.Sprintf("ficha-precio-%s.pdf", vehicle.ID)
	return pdfBytes, filename, nil
}
