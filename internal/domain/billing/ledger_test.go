package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/oficina-api/internal/domain"
	"github.com/tu-usuario/oficina-api/internal/domain/billing"
)

func TestLedger_Add_SiembraServicioPorDefecto(t *testing.T) {
	l := billing.NewLedger()
	l.Add("Desarrollo de software")

	require.Equal(t, 1, l.Len())
	item := l.Items()[0]
	assert.Equal(t, "Desarrollo de software", item.ServiceName)
	assert.True(t, item.Quantity.IsZero())
	assert.True(t, item.LineTotal.IsZero())
	assert.Empty(t, item.ID, "fila nueva no carga ID del servidor")
}

func TestLedger_Update_RecalculaDerivados(t *testing.T) {
	l := billing.NewLedger()
	l.Add("Soporte")
	require.NoError(t, l.Update(0, billing.FieldQuantity, "4"))
	require.NoError(t, l.Update(0, billing.FieldUnitPrice, "25.25"))

	item := l.Items()[0]
	assert.True(t, dec("101").Equal(item.Amount))
	assert.True(t, dec("101").Equal(item.LineTotal))
}

func TestLedger_Update_IndiceFueraDeRango(t *testing.T) {
	l := billing.NewLedger()
	assert.ErrorIs(t, l.Update(0, billing.FieldQuantity, "1"), domain.ErrInvalidInput)
	assert.ErrorIs(t, l.Update(-1, billing.FieldQuantity, "1"), domain.ErrInvalidInput)
}

// Remover una fila nunca persistida no toca la lista de borrado pendiente.
func TestLedger_Remove_FilaNuevaNoRegistraBorrado(t *testing.T) {
	l := billing.NewLedger()
	l.Add("Consultoría")
	require.NoError(t, l.Remove(0))

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.RemovedIDs())
}

// Escenario E: dos líneas, se remueve la primera (persistida con id=7) →
// la lista pendiente contiene "7," y los totales reflejan solo la restante.
func TestLedger_Remove_FilaPersistidaRegistraBorrado(t *testing.T) {
	l := billing.NewLedger(
		billing.LineItem{ID: "7", ServiceName: "Hosting", Quantity: dec("1"), UnitPrice: dec("300")},
		billing.LineItem{ID: "9", ServiceName: "Dominio", Quantity: dec("2"), UnitPrice: dec("50")},
	)
	require.NoError(t, l.Remove(0))

	assert.Equal(t, "7,", l.RemovedIDs())
	totals := billing.Recompute(l.Items())
	assert.True(t, dec("100").Equal(totals.SubTotal))
	assert.True(t, dec("100").Equal(totals.TotalAmount))
}

func TestLedger_Remove_VariasPersistidasAcumulan(t *testing.T) {
	l := billing.NewLedger(
		billing.LineItem{ID: "7"},
		billing.LineItem{ID: "9"},
		billing.LineItem{},
	)
	require.NoError(t, l.Remove(0))
	require.NoError(t, l.Remove(1)) // la fila nueva, sin ID
	require.NoError(t, l.Remove(0)) // la que era id=9

	assert.Equal(t, "7,9,", l.RemovedIDs())
	assert.Equal(t, 0, l.Len())
}

func TestLedger_ApplyUniformRates_TodasLasLineas(t *testing.T) {
	l := billing.NewLedger(
		billing.LineItem{Quantity: dec("1"), UnitPrice: dec("100")},
		billing.LineItem{Quantity: dec("2"), UnitPrice: dec("200")},
	)
	l.ApplyUniformRates(dec("10"), dec("15"))

	for _, item := range l.Items() {
		assert.True(t, dec("10").Equal(item.DiscountPercent))
		assert.True(t, dec("15").Equal(item.VATPercent))
	}
	totals := billing.Recompute(l.Items())
	// 100 y 400 → 500 de subtotal; con 10% de descuento y 15% de IVA: 517.5
	assert.True(t, dec("500").Equal(totals.SubTotal))
	assert.True(t, dec("517.5").Equal(totals.TotalAmount))
}

// El ledger nunca retiene cantidades, precios, descuentos o IVA negativos.
func TestLedger_NuncaRetieneNegativos(t *testing.T) {
	l := billing.NewLedger()
	l.Add("Servicio")
	require.NoError(t, l.Update(0, billing.FieldQuantity, "-3"))
	require.NoError(t, l.Update(0, billing.FieldUnitPrice, "-10"))
	require.NoError(t, l.Update(0, billing.FieldDiscountPercent, "-1"))
	require.NoError(t, l.Update(0, billing.FieldVATPercent, "-50"))

	item := l.Items()[0]
	assert.True(t, item.Quantity.IsZero())
	assert.True(t, item.UnitPrice.IsZero())
	assert.True(t, item.DiscountPercent.IsZero())
	assert.True(t, item.VATPercent.IsZero())
}
