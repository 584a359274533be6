package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de un pago.
const (
	TransactionTypeCash     = "cash"
	TransactionTypeTransfer = "transfer"
	TransactionTypeCheque   = "cheque"
	TransactionTypeCard     = "card"
)

// Payment es un pago registrado contra una factura. Amount es el monto de
// esta transacción; el acumulado pagado vive en la factura.
type Payment struct {
	ID              string
	CompanyID       string
	InvoiceID       string
	TransactionID   string // referencia externa (consignación, cheque, voucher)
	TransactionType string
	Date            time.Time
	Amount          decimal.Decimal // ≥ 0
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
