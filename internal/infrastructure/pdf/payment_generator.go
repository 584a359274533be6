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

	appbilling "github.com/tu-usuario/oficina-api/internal/application/billing"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
)

var _ appbilling.PaymentPDFGenerator = (*PaymentGenerator)(nil)

// PaymentGenerator implementa billing.PaymentPDFGenerator: el recibo de un
// pago con la historia previa y el saldo resultante de la factura.
type PaymentGenerator struct{}

// NewPaymentGenerator construye el generador.
func NewPaymentGenerator() *PaymentGenerator { return &PaymentGenerator{} }

// GeneratePaymentPDF genera el recibo de pago y devuelve sus bytes.
func (g *PaymentGenerator) GeneratePaymentPDF(_ context.Context, data *appbilling.PaymentDocData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de pago", true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(receiptHeaderRow(data.Payment, data.Invoice, data.Company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(data.Client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(data.PriorPayments) > 0 {
		m.AddRows(priorHeaderRow())
		for _, r := range priorRows(data.PriorPayments) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(receiptTotalsRow(data.Payment, data.Invoice, data.Currency))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// receiptHeaderRow: emisor (izq) y datos del pago (der).
func receiptHeaderRow(payment *entity.Payment, inv *entity.Invoice, company *entity.Company) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Factura "+inv.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Medio: %s",
				payment.Date.Format("02/01/2006"),
				nonEmpty(payment.TransactionType, "—"),
			), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

// priorHeaderRow: cabecera de la tabla de pagos previos.
func priorHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Medio", 3, align.Left),
		h("Referencia", 3, align.Left),
		h("Monto", 3, align.Right),
	)
}

// priorRows: una fila por pago previo registrado.
func priorRows(payments []*entity.Payment) []core.Row {
	result := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				p.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(p.TransactionType, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				nonEmpty(p.TransactionID, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				formatMoney(p.Amount),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// receiptTotalsRow: total de la factura, este pago, acumulado y saldo.
func receiptTotalsRow(payment *entity.Payment, inv *entity.Invoice, currency *entity.Currency) core.Row {
	symbol := "$"
	if currency != nil && currency.Symbol != "" {
		symbol = currency.Symbol
	}
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

	return row.New(32).Add(
		col.New(4),
		col.New(4).Add(
			label("Total factura:"),
			grandLabel("ESTE PAGO:"),
			label("Pagado acumulado:"),
			grandLabel("SALDO PENDIENTE:"),
		),
		col.New(4).Add(
			value(symbol+formatMoney(inv.TotalAmount)),
			grandValue(symbol+formatMoney(payment.Amount)),
			value(symbol+formatMoney(inv.PaidAmount)),
			grandValue(symbol+formatMoney(inv.DueAmount)),
		),
	)
}
