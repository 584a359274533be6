package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura.
const (
	InvoiceStatusDraft   = "draft"   // guardada, aún no enviada al cliente
	InvoiceStatusSent    = "sent"    // marcada/notificada como enviada
	InvoiceStatusPartial = "partial" // con pagos parciales registrados
	InvoiceStatusPaid    = "paid"    // saldo en cero
)

// Invoice representa la cabecera de una factura.
// Los totales son derivados del ledger de líneas; DueAmount nunca es
// negativo (se clampea a cero si los pagos exceden el total).
type Invoice struct {
	ID               string
	CompanyID        string
	ClientID         string
	BillingAddressID string // cuenta de cobro referenciada
	AuthorityID      string // firmante autorizado
	CurrencyID       string
	Number           string
	IssueDate        time.Time
	DueDate          time.Time
	PaymentDueDays   int // "pago a N días"; DueDate = IssueDate + N
	Notes            string
	SubTotal         decimal.Decimal // Σ amount antes de descuento e IVA
	TotalAmount      decimal.Decimal // Σ line_total
	PaidAmount       decimal.Decimal
	DueAmount        decimal.Decimal
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// InvoiceItem es una línea persistida de la factura. Position conserva el
// orden de presentación del formulario.
type InvoiceItem struct {
	ID              string
	InvoiceID       string
	ServiceName     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DurationUnits   decimal.Decimal
	DiscountPercent decimal.Decimal
	VATPercent      decimal.Decimal
	Amount          decimal.Decimal
	DiscountAmount  decimal.Decimal
	VATAmount       decimal.Decimal
	LineTotal       decimal.Decimal
	Position        int
}
