package billing

import "github.com/shopspring/decimal"

// Totals son los agregados de la factura derivados del ledger.
type Totals struct {
	SubTotal    decimal.Decimal // Σ Amount (antes de descuento e IVA)
	TotalAmount decimal.Decimal // Σ LineTotal
}

// Recompute pliega las líneas en los totales de la factura. Función pura:
// mismas entradas, mismas salidas; un ledger vacío produce totales en cero.
// Debe invocarse tras cada mutación del ledger para que la capa de
// presentación nunca muestre totales obsoletos.
func Recompute(items []LineItem) Totals {
	var t Totals
	for i := range items {
		t.SubTotal = t.SubTotal.Add(items[i].Amount)
		t.TotalAmount = t.TotalAmount.Add(items[i].LineTotal)
	}
	return t
}

// Due calcula el saldo pendiente: max(0, total − pagado).
// Nunca retorna negativo; si los pagos exceden el total se fija en cero.
func Due(totalAmount, paidAmount decimal.Decimal) decimal.Decimal {
	due := totalAmount.Sub(paidAmount)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}
