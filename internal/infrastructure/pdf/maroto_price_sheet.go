// Package pdf implementa la generación de la ficha de precio de un vehículo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Automotora + RUT  │  Ficha de precio + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VEHÍCULO: Marca Modelo Año / Tipo / Moneda / Compra        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Descripción | Pagador | Importe             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Servicios / Costo total / PRECIO SUGERIDO         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de uso interno                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/automly/automotora-api/internal/application/quote"
	"github.com/automly/automotora-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPriceSheetGenerator implementa quote.PriceSheetGenerator usando Maroto v2.
type MarotoPriceSheetGenerator struct{}

// NewMarotoPriceSheetGenerator construye el generador.
func NewMarotoPriceSheetGenerator() *MarotoPriceSheetGenerator { return &MarotoPriceSheetGenerator{} }

// GeneratePriceSheet genera el PDF y devuelve sus bytes.
func (g *MarotoPriceSheetGenerator) GeneratePriceSheet(_ context.Context, data *quote.PriceSheetData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de precio", true).
		WithAuthor(data.Dealer.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vehicleRow(data.Vehicle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range serviceRows(data.Services) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: automotora + RUT (izq) y título + fecha de emisión (der).
func headerRow(data *quote.PriceSheetData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.Dealer.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RUT: "+data.Dealer.RUT, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA DE PRECIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s %s %d", data.Vehicle.Brand, data.Vehicle.Model, data.Vehicle.Year), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// vehicleRow: datos del vehículo.
func vehicleRow(v *entity.Vehicle) core.Row {
	ownership := "Propio"
	if v.OwnershipType == entity.OwnershipConsignment {
		ownership = "Consignación"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL VEHÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Tipo: %s   |   Moneda: %s   |   Precio de compra: %s",
				ownership, v.Currency, money(v.Currency, v.PurchasePrice.StringFixed(2)),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de servicios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Center),
		h("Descripción del servicio", 5, align.Left),
		h("Pagador", 2, align.Center),
		h("Importe", 3, align.Right),
	)
}

// serviceRows: una fila por servicio activo del vehículo.
func serviceRows(services []*entity.VehicleService) []core.Row {
	result := make([]core.Row, 0, len(services))
	for _, s := range services {
		if s == nil || !s.IsActive {
			continue
		}
		payer := "Automotora"
		if s.Payer == entity.PayerOwner {
			payer = "Dueño"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				s.ServiceDate.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				s.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				payer,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				s.Amount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(7).Add(col.New(12).Add(
			text.New("Sin servicios registrados", props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: colorGray,
			}),
		)))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(data *quote.PriceSheetData) core.Row {
	currency := data.Vehicle.Currency

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Costo de servicios:"),
			label("Costo total:"),
			grandLabel("PRECIO SUGERIDO:"),
		),
		col.New(4).Add(
			value(money(currency, data.TotalServicesCost.StringFixed(2))),
			value(money(currency, data.TotalCost.StringFixed(2))),
			grandValue(money(currency, data.SuggestedSalePrice.StringFixed(2))),
		),
		col.New(1),
	)
}

// footerRow: leyenda de uso interno.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento de uso interno. El precio sugerido se calcula con el margen "+
				"configurado de la automotora y los servicios pagados por la automotora; "+
				"no constituye una oferta de venta.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// money antepone el código de moneda al importe. Ej: ("UYU", "12420.00") → "UYU 12420.00".
func money(currency, amount string) string {
	return currency + " " + amount
}
