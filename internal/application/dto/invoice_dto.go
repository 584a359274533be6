package dto

import "github.com/shopspring/decimal"

// InvoiceItemPayload es una línea tal como la envía el formulario dentro del
// campo multipart "services" (array JSON). Los numéricos viajan como string
// crudo: la coacción (no numérico → 0, clamps) ocurre al construir el ledger,
// igual que en cada tecla del formulario original.
type InvoiceItemPayload struct {
	ID              string `json:"id,omitempty"` // presente solo en filas ya persistidas
	ServiceName     string `json:"service_name"`
	Quantity        string `json:"quantity"`
	UnitPrice       string `json:"unit_price"`
	DurationUnits   string `json:"duration_units,omitempty"`
	DiscountPercent string `json:"discount_percent,omitempty"`
	VATPercent      string `json:"vat_percent,omitempty"`
}

// SaveInvoiceRequest payload de creación/edición de factura. En el wire llega
// como multipart/form-data: campos planos + "services" (JSON) +
// "remove_service" (IDs unidos por coma de líneas persistidas removidas).
type SaveInvoiceRequest struct {
	ClientID         string               `json:"client_id"`
	BillingAddressID string               `json:"billing_address_id"`
	AuthorityID      string               `json:"authority_id,omitempty"`
	CurrencyID       string               `json:"currency_id"`
	Number           string               `json:"number,omitempty"`
	IssueDate        string               `json:"issue_date"` // YYYY-MM-DD
	PaymentDueDays   *int                 `json:"payment_due_days,omitempty"` // nil = sin cambio; 0 = pago inmediato
	Notes            string               `json:"notes,omitempty"`
	Items            []InvoiceItemPayload `json:"services"`
	RemoveItemIDs    string               `json:"remove_service,omitempty"` // "7,9,"

	// MarkSent no viaja en el body: el handler lo toma del query ?sent=true
	// (la acción "guardar y marcar enviada" del formulario).
	MarkSent bool `json:"-"`
}

// InvoiceItemResponse línea con sus montos derivados, redondeados a 2 decimales.
type InvoiceItemResponse struct {
	ID              string          `json:"id"`
	ServiceName     string          `json:"service_name"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DurationUnits   decimal.Decimal `json:"duration_units"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	VATPercent      decimal.Decimal `json:"vat_percent"`
	Amount          decimal.Decimal `json:"amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	LineTotal       decimal.Decimal `json:"line_total"`
}

// InvoiceResponse factura con detalle completo.
type InvoiceResponse struct {
	ID               string                `json:"id"`
	CompanyID        string                `json:"company_id"`
	ClientID         string                `json:"client_id"`
	ClientName       string                `json:"client_name,omitempty"`
	BillingAddressID string                `json:"billing_address_id,omitempty"`
	AuthorityID      string                `json:"authority_id,omitempty"`
	CurrencyID       string                `json:"currency_id,omitempty"`
	Number           string                `json:"number"`
	IssueDate        string                `json:"issue_date"`
	DueDate          string                `json:"due_date"`
	Notes            string                `json:"notes,omitempty"`
	SubTotal         decimal.Decimal       `json:"sub_total"`
	TotalAmount      decimal.Decimal       `json:"total_amount"`
	PaidAmount       decimal.Decimal       `json:"paid_amount"`
	DueAmount        decimal.Decimal       `json:"due_amount"`
	Status           string                `json:"status"`
	Items            []InvoiceItemResponse `json:"services"`
}

// InvoiceListResponse listado paginado de facturas (cabeceras, sin líneas).
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
