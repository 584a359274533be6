package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/oficina-api/internal/domain/billing"
)

// Escenario C: total=1000, pagos previos [300, 200], pago en curso 150 →
// priorTotalPaid=500, dueAmount=350.
func TestReconciliation_EscenarioC(t *testing.T) {
	prior := []billing.PriorPayment{
		{Amount: dec("300")},
		{Amount: dec("200")},
	}
	total := billing.PriorTotalPaid(prior)
	assert.True(t, dec("500").Equal(total))

	due := billing.ComputeDue(dec("1000"), total, dec("150"))
	assert.True(t, dec("350").Equal(due))
}

// Escenario D: total=100, pago previo de 150, pago en curso 0 →
// el saldo se clampea a 0, no a −50.
func TestReconciliation_EscenarioD_ClampEnCero(t *testing.T) {
	prior := []billing.PriorPayment{{Amount: dec("150")}}
	due := billing.ComputeDue(dec("100"), billing.PriorTotalPaid(prior), dec("0"))
	assert.True(t, due.IsZero())
}

// dueAmount nunca es negativo para ninguna combinación de entradas ≥ 0.
func TestComputeDue_NuncaNegativo(t *testing.T) {
	cases := []struct{ total, prior, current string }{
		{"0", "0", "0"},
		{"100", "0", "0"},
		{"100", "100", "0"},
		{"100", "100", "100"},
		{"0.01", "9999", "9999"},
		{"1000", "999.99", "0.02"},
	}
	for _, c := range cases {
		due := billing.ComputeDue(dec(c.total), dec(c.prior), dec(c.current))
		assert.False(t, due.IsNegative(), "total=%s prior=%s current=%s", c.total, c.prior, c.current)
	}
}

// Entradas negativas (payload malformado) se tratan como cero antes de operar.
func TestComputeDue_EntradasNegativasComoCero(t *testing.T) {
	due := billing.ComputeDue(dec("-100"), dec("-50"), dec("-10"))
	assert.True(t, due.IsZero())

	due = billing.ComputeDue(dec("200"), dec("-50"), dec("30"))
	assert.True(t, dec("170").Equal(due), "solo el pago en curso válido descuenta")
}

// La historia de pagos previos no se muta: montos negativos se ignoran al sumar.
func TestPriorTotalPaid_IgnoraMontosNegativos(t *testing.T) {
	prior := []billing.PriorPayment{
		{Amount: dec("100")},
		{Amount: dec("-40")},
		{Amount: dec("60")},
	}
	assert.True(t, dec("160").Equal(billing.PriorTotalPaid(prior)))
}

func TestPriorTotalPaid_ListaVacia(t *testing.T) {
	assert.True(t, billing.PriorTotalPaid(nil).IsZero())
}
