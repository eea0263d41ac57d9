// Package pdf implementa la generación del comprobante de reserva en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + Licencia  │  N° Reserva + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VIAJERO: Nombre + Email                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Listado | Huéspedes | Check-in | Check-out        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + Leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/turismo-api/internal/application/booking"
	"github.com/jhoicas/turismo-api/internal/application/shaping"
	"github.com/jhoicas/turismo-api/internal/domain/entity"
	"github.com/jhoicas/turismo-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 86}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ booking.VoucherGenerator = (*MarotoVoucherGenerator)(nil)

// MarotoVoucherGenerator implementa booking.VoucherGenerator usando Maroto v2.
type MarotoVoucherGenerator struct{}

// NewMarotoVoucherGenerator construye el generador.
func NewMarotoVoucherGenerator() *MarotoVoucherGenerator { return &MarotoVoucherGenerator{} }

// GenerateVoucher genera el comprobante PDF y devuelve sus bytes.
func (g *MarotoVoucherGenerator) GenerateVoucher(
	_ context.Context,
	bRow repository.CheckoutRow,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Reserva", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(&bRow.Checkout, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(travelerRow(bRow))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRow(bRow))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(&bRow.Checkout))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range footerRows(&bRow.Checkout, company) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre y licencia de la empresa (izq), número de reserva y fecha (der).
func headerRow(c *entity.Checkout, company *entity.Company) core.Row {
	fecha := c.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Licencia: "+nonEmpty(company.LicenseNumber, "N/A"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(c.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// travelerRow: datos del viajero, con placeholders si la reserva es anónima.
func travelerRow(bRow repository.CheckoutRow) core.Row {
	name := shaping.AnonymousName
	if bRow.UserName != nil && *bRow.UserName != "" {
		name = *bRow.UserName
	}
	email := shaping.AnonymousEmail
	if bRow.UserEmail != nil && *bRow.UserEmail != "" {
		email = *bRow.UserEmail
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("VIAJERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Email: "+email, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// detailRow: listado reservado, huéspedes y fechas de estadía.
func detailRow(bRow repository.CheckoutRow) core.Row {
	c := bRow.Checkout
	title := nonEmpty(bRow.ItemTitle, "N/A")

	return row.New(20).Add(
		col.New(6).Add(
			text.New("LISTADO RESERVADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(kindLabel(c.Item.Kind), props.Text{Size: 8, Top: 13, Color: colorGray}),
		),
		col.New(2).Add(
			text.New("HUÉSPEDES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Center,
			}),
			text.New(fmt.Sprintf("%d", c.Guests), props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7, Align: align.Center,
			}),
		),
		col.New(2).Add(
			text.New("CHECK-IN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Center,
			}),
			text.New(c.CheckIn.Format("02/01/2006"), props.Text{Size: 9, Top: 7, Align: align.Center}),
		),
		col.New(2).Add(
			text.New("CHECK-OUT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Center,
			}),
			text.New(c.CheckOut.Format("02/01/2006"), props.Text{Size: 9, Top: 7, Align: align.Center}),
		),
	)
}

// totalRow: total pagado alineado a la derecha.
func totalRow(c *entity.Checkout) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("TOTAL PAGADO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 2,
			}),
		),
		col.New(3).Add(
			text.New("$"+formatMoney(c.TotalPrice.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 2,
			}),
		),
	)
}

// footerRows: QR con los datos de verificación + leyenda.
func footerRows(c *entity.Checkout, company *entity.Company) []core.Row {
	qrData := fmt.Sprintf("reserva:%s|empresa:%s|estado:%s|total:%s",
		c.ID, company.ID, c.Status, c.TotalPrice.StringFixed(2))

	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("VERIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(40).Add(
			col.New(4).Add(code.NewQr(qrData, props.Rect{Percent: 95, Center: true})),
			col.New(8).Add(
				text.New("Escanea el código QR para verificar\nesta reserva con la empresa.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("RESERVA CONFIRMADA", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 20,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Presente este comprobante al momento del check-in. "+
					"Las condiciones de cancelación son las publicadas por la empresa al momento de la reserva.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID primeros 8 caracteres del UUID, suficiente como referencia humana.
func shortID(id string) string {
	if len(id) > 8 {
		return "#" + id[:8]
	}
	return "#" + id
}

func kindLabel(k entity.ListingKind) string {
	switch k {
	case entity.KindDestination:
		return "Destino"
	case entity.KindOffer:
		return "Oferta"
	case entity.KindPackage:
		return "Paquete"
	}
	return string(k)
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
