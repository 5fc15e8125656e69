package quote

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/automly/automotora-api/internal/domain/entity"
)

// PriceSheetData datos ya resueltos y calculados para la ficha de precio de un
// vehículo. El generador solo renderiza; no consulta ni recalcula nada.
type PriceSheetData struct {
	Dealer   *entity.Dealer
	Vehicle  *entity.Vehicle
	Services []*entity.VehicleService

	TotalServicesCost  decimal.Decimal
	TotalCost          decimal.Decimal
	SuggestedSalePrice decimal.Decimal

	GeneratedAt time.Time
}

// PriceSheetGenerator renderiza la ficha de precio como PDF.
type PriceSheetGenerator interface {
	GeneratePriceSheet(ctx context.Context, data *PriceSheetData) ([]byte, error)
}
