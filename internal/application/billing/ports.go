package billing

import (
	"context"

	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

// BillingTxRunner ejecuta una función dentro de una transacción con los
// repos de facturación atados a la tx (factura + pagos en una sola unidad).
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// InvoiceDocData agrupa todo lo que el generador necesita para renderizar
// una factura (el preview se arma desde el estado en memoria, sin persistir).
type InvoiceDocData struct {
	Invoice   *entity.Invoice
	Items     []*entity.InvoiceItem
	Company   *entity.Company
	Client    *entity.Client
	Currency  *entity.Currency
	Signature *entity.AuthoritySignature
	Account   *entity.BillingAddress
}

// PaymentDocData agrupa los datos del recibo de pago: la factura, la
// historia de pagos previos y el pago en curso con su saldo resultante.
type PaymentDocData struct {
	Invoice       *entity.Invoice
	Company       *entity.Company
	Client        *entity.Client
	Currency      *entity.Currency
	Payment       *entity.Payment
	PriorPayments []*entity.Payment
}

// InvoicePDFGenerator renderiza la factura a PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, data *InvoiceDocData) ([]byte, error)
}

// PaymentPDFGenerator renderiza el recibo de pago a PDF.
type PaymentPDFGenerator interface {
	GeneratePaymentPDF(ctx context.Context, data *PaymentDocData) ([]byte, error)
}
