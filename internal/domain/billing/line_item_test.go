package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/oficina-api/internal/domain/billing"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// lineTotal = q×p×(1−d/100)×(1+v/100) para cualquier combinación de campos.
func TestLineItem_Recalculate_FormulaCompleta(t *testing.T) {
	li := billing.LineItem{
		ServiceName:     "Consultoría",
		Quantity:        dec("3"),
		UnitPrice:       dec("120.50"),
		DiscountPercent: dec("25"),
		VATPercent:      dec("19"),
	}
	li.Recalculate()

	assert.True(t, dec("361.50").Equal(li.Amount), "amount = 3 × 120.50")
	assert.True(t, dec("90.375").Equal(li.DiscountAmount), "descuento al 25%")
	assert.True(t, dec("271.125").Equal(li.AmountAfterDiscount))
	assert.True(t, dec("322.63875").Equal(li.LineTotal), "con IVA 19% a precisión completa")
	assert.True(t, dec("322.64").Equal(billing.Round2(li.LineTotal)), "redondeo solo en la frontera")
}

// Escenario B del modelo financiero: qty=1, price=500, discount=10, vat=15.
func TestLineItem_Recalculate_EscenarioB(t *testing.T) {
	li := billing.LineItem{Quantity: dec("1"), UnitPrice: dec("500"), DiscountPercent: dec("10"), VATPercent: dec("15")}
	li.Recalculate()

	assert.True(t, dec("500").Equal(li.Amount))
	assert.True(t, dec("50").Equal(li.DiscountAmount))
	assert.True(t, dec("450").Equal(li.AmountAfterDiscount))
	assert.True(t, dec("67.5").Equal(li.VATAmount))
	assert.True(t, dec("517.5").Equal(li.LineTotal))
}

// Entrada no numérica se coacciona a 0 en la escritura, no se rechaza.
func TestCoerceDecimal_EntradaInvalidaEsCero(t *testing.T) {
	cases := []string{"", "abc", "12a", "1.2.3", "--5", " "}
	for _, raw := range cases {
		assert.True(t, billing.CoerceDecimal(raw).IsZero(), "entrada %q debe coaccionarse a 0", raw)
	}
}

func TestCoerceDecimal_NegativoSeCoaccionaACero(t *testing.T) {
	assert.True(t, billing.CoerceDecimal("-15.50").IsZero())
}

func TestCoerceDecimal_ValorValidoSeConserva(t *testing.T) {
	assert.True(t, dec("99.99").Equal(billing.CoerceDecimal(" 99.99 ")))
}

func TestCoercePercent_ClampEnCien(t *testing.T) {
	assert.True(t, dec("100").Equal(billing.CoercePercent("150")))
	assert.True(t, dec("100").Equal(billing.CoercePercent("100")))
	assert.True(t, dec("42.5").Equal(billing.CoercePercent("42.5")))
	assert.True(t, billing.CoercePercent("-8").IsZero())
}

func TestCoerceQuantity_TruncaAEntero(t *testing.T) {
	assert.True(t, dec("3").Equal(billing.CoerceQuantity("3.9")))
	assert.True(t, billing.CoerceQuantity("no-numérico").IsZero())
}

// Set coacciona según el campo y recalcula de inmediato.
func TestLineItem_Set_CoaccionaYRecalcula(t *testing.T) {
	var li billing.LineItem
	li.Set(billing.FieldQuantity, "2")
	li.Set(billing.FieldUnitPrice, "100")
	assert.True(t, dec("200").Equal(li.LineTotal))

	li.Set(billing.FieldUnitPrice, "basura")
	assert.True(t, li.LineTotal.IsZero(), "precio inválido → 0 → total 0")

	li.Set(billing.FieldVATPercent, "500")
	li.Set(billing.FieldUnitPrice, "10")
	assert.True(t, dec("40").Equal(li.LineTotal), "IVA clampeado a 100%")
}
