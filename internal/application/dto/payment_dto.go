package dto

import "github.com/shopspring/decimal"

// SavePaymentRequest payload para registrar o editar un pago.
// CurrentPaidAmount viaja como string crudo y se coacciona (no numérico → 0).
type SavePaymentRequest struct {
	InvoiceID         string `json:"invoice_id"`
	TransactionID     string `json:"transaction_id,omitempty"`
	TransactionType   string `json:"transaction_type"`
	Date              string `json:"date"` // YYYY-MM-DD
	CurrentPaidAmount string `json:"current_paid_amount"`
	Notes             string `json:"notes,omitempty"`
}

// PriorPaymentDTO pago previo (historia autoritativa del backend).
type PriorPaymentDTO struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentStateResponse estado de reconciliación de una factura: total
// autoritativo, pagos previos y saldo. Es la lectura que hace el formulario
// de pago antes de aceptar un monto nuevo.
type PaymentStateResponse struct {
	InvoiceID      string            `json:"invoice_id"`
	InvoiceNumber  string            `json:"invoice_number"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	PriorPayments  []PriorPaymentDTO `json:"prior_payments"`
	PriorTotalPaid decimal.Decimal   `json:"prior_total_paid"`
	DueAmount      decimal.Decimal   `json:"due_amount"`
	ClientInfo     ClientResponse    `json:"client_info"`
	ReceiverInfo   CompanyResponse   `json:"receiver_info"`
}

// PaymentResponse pago registrado, con el saldo resultante de la factura.
type PaymentResponse struct {
	ID              string          `json:"id"`
	InvoiceID       string          `json:"invoice_id"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	TransactionType string          `json:"transaction_type"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Notes           string          `json:"notes,omitempty"`
	InvoicePaid     decimal.Decimal `json:"invoice_paid_amount"`
	InvoiceDue      decimal.Decimal `json:"invoice_due_amount"`
	InvoiceStatus   string          `json:"invoice_status"`
}
