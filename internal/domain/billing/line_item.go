package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Field identifica un campo editable de una línea de factura.
type Field string

// Campos editables de LineItem. Update coacciona el valor según el campo.
const (
	FieldServiceName     Field = "service_name"
	FieldQuantity        Field = "quantity"
	FieldUnitPrice       Field = "unit_price"
	FieldDurationUnits   Field = "duration_units"
	FieldDiscountPercent Field = "discount_percent"
	FieldVATPercent      Field = "vat_percent"
)

var cien = decimal.NewFromInt(100)

// LineItem es una línea de servicio de la factura con sus montos derivados.
// ID vacío = fila nueva (nunca persistida); con ID = fila existente en el servidor.
type LineItem struct {
	ID              string
	ServiceName     string
	Quantity        decimal.Decimal // entero ≥ 0
	UnitPrice       decimal.Decimal // ≥ 0
	DurationUnits   decimal.Decimal // entero ≥ 0, informativo
	DiscountPercent decimal.Decimal // [0,100]
	VATPercent      decimal.Decimal // [0,100]

	// Derivados — se recalculan con Recalculate tras cada edición.
	Amount              decimal.Decimal // Quantity × UnitPrice
	DiscountAmount      decimal.Decimal // Amount × DiscountPercent/100
	AmountAfterDiscount decimal.Decimal
	VATAmount           decimal.Decimal // AmountAfterDiscount × VATPercent/100
	LineTotal           decimal.Decimal // AmountAfterDiscount + VATAmount
}

// Recalculate recalcula los montos derivados a precisión completa.
// El redondeo a 2 decimales ocurre solo en la frontera (DTO / persistencia).
func (li *LineItem) Recalculate() {
	li.Amount = li.Quantity.Mul(li.UnitPrice)
	li.DiscountAmount = li.Amount.Mul(li.DiscountPercent).Div(cien)
	li.AmountAfterDiscount = li.Amount.Sub(li.DiscountAmount)
	li.VATAmount = li.AmountAfterDiscount.Mul(li.VATPercent).Div(cien)
	li.LineTotal = li.AmountAfterDiscount.Add(li.VATAmount)
}

// Set escribe un campo coaccionando el valor crudo y recalcula los derivados.
func (li *LineItem) Set(field Field, raw string) {
	switch field {
	case FieldServiceName:
		li.ServiceName = strings.TrimSpace(raw)
	case FieldQuantity:
		li.Quantity = CoerceQuantity(raw)
	case FieldUnitPrice:
		li.UnitPrice = CoerceDecimal(raw)
	case FieldDurationUnits:
		li.DurationUnits = CoerceQuantity(raw)
	case FieldDiscountPercent:
		li.DiscountPercent = CoercePercent(raw)
	case FieldVATPercent:
		li.VATPercent = CoercePercent(raw)
	}
	li.Recalculate()
}

// CoerceDecimal convierte entrada cruda a decimal ≥ 0.
// Entrada no numérica o negativa se coacciona a 0 en el momento de la escritura,
// no en una validación posterior.
func CoerceDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CoercePercent coacciona a un porcentaje dentro de [0,100].
func CoercePercent(raw string) decimal.Decimal {
	d := CoerceDecimal(raw)
	if d.GreaterThan(cien) {
		return cien
	}
	return d
}

// CoerceQuantity coacciona a un entero ≥ 0 (trunca la parte decimal).
func CoerceQuantity(raw string) decimal.Decimal {
	return CoerceDecimal(raw).Truncate(0)
}

// Round2 redondea un monto a 2 decimales. Usar solo en la frontera.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
