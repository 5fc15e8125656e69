// Package pricing implementa el cálculo de costo y precio sugerido de un
// vehículo (servicio de dominio, funciones puras sobre estado ya leído).
//
//	CostoServices  = Σ amount de services activos pagados por la automotora
//	CostoTotal     = precio de compra + CostoServices
//	PrecioSugerido = CostoTotal * (1 + margen/100), redondeado a 2 decimales
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/automly/automotora-api/internal/domain/entity"
)

// Scale escala monetaria de los montos persistidos.
const Scale = 2

// TotalServicesCost suma los montos de los services activos pagados por la
// automotora. Los services pagados por el dueño (consignación) no son un costo
// del dealer y se excluyen, igual que los desactivados. Sin services que
// califiquen devuelve exactamente 0.
func TotalServicesCost(services []*entity.VehicleService) decimal.Decimal {
	total := decimal.Zero
	for _, s := range services {
		if s == nil || !s.IsActive || s.Payer != entity.PayerDealer {
			continue
		}
		total = total.Add(s.Amount)
	}
	return total
}

// TotalCost devuelve precio de compra + costo de services. El zero value de
// decimal.Decimal es 0, así que un vehículo sin precio cargado suma 0.
func TotalCost(v *entity.Vehicle, services []*entity.VehicleService) decimal.Decimal {
	if v == nil {
		return TotalServicesCost(services)
	}
	return v.PurchasePrice.Add(TotalServicesCost(services))
}

// SuggestedSalePrice aplica el margen de la automotora sobre el costo total.
// margin es porcentaje (15.00 = 15%); nil se trata como 0 y el precio queda
// igual al costo (caso bootstrap: vehículo aún sin dealer o dealer sin margen).
// La división margen/100 se hace sin redondeo intermedio; solo el resultado
// final se redondea a 2 decimales.
func SuggestedSalePrice(v *entity.Vehicle, services []*entity.VehicleService, margin *decimal.Decimal) decimal.Decimal {
	cost := TotalCost(v, services)
	if margin == nil {
		return cost.Round(Scale)
	}
	factor := decimal.NewFromInt(1).Add(margin.Div(decimal.NewFromInt(100)))
	return cost.Mul(factor).Round(Scale)
}
