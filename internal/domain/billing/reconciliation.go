package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriorPayment es un pago previo registrado contra la factura. La historia
// de pagos previos es autoritativa del backend y nunca se muta localmente.
type PriorPayment struct {
	Date   time.Time
	Amount decimal.Decimal
}

// PriorTotalPaid suma los pagos previos. Montos negativos o ausentes
// cuentan como cero (defaulting defensivo ante payloads malformados).
func PriorTotalPaid(payments []PriorPayment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Amount.IsNegative() {
			continue
		}
		total = total.Add(p.Amount)
	}
	return total
}

// ComputeDue calcula el saldo tras aplicar el pago en curso:
// max(0, totalAmount − (priorTotalPaid + currentPaid)).
// Entradas negativas se tratan como cero antes de operar.
func ComputeDue(totalAmount, priorTotalPaid, currentPaid decimal.Decimal) decimal.Decimal {
	return Due(floorZero(totalAmount), floorZero(priorTotalPaid).Add(floorZero(currentPaid)))
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
