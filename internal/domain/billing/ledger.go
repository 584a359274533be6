package billing

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oficina-api/internal/domain"
)

// Ledger es la colección ordenada y editable de líneas de una factura.
// Las filas removidas que ya estaban persistidas (con ID del servidor) se
// acumulan en una lista de borrado pendiente que viaja al backend al guardar.
type Ledger struct {
	items   []LineItem
	removed []string
}

// NewLedger construye el ledger recalculando los derivados de cada línea.
func NewLedger(items ...LineItem) *Ledger {
	l := &Ledger{items: make([]LineItem, len(items))}
	copy(l.items, items)
	for i := range l.items {
		l.items[i].Recalculate()
	}
	return l
}

// Add agrega una fila nueva con el servicio por defecto del catálogo y
// campos numéricos en cero. No afecta las filas existentes.
func (l *Ledger) Add(defaultService string) {
	item := LineItem{ServiceName: defaultService}
	item.Recalculate()
	l.items = append(l.items, item)
}

// Update escribe un campo de la fila en index (coacción incluida) y
// recalcula sus montos derivados de inmediato.
func (l *Ledger) Update(index int, field Field, raw string) error {
	if index < 0 || index >= len(l.items) {
		return domain.ErrInvalidInput
	}
	l.items[index].Set(field, raw)
	return nil
}

// Remove quita la fila en index. Si la fila carga un ID persistido, ese ID
// pasa a la lista de borrado pendiente; una fila nunca persistida solo
// desaparece de la lista local.
func (l *Ledger) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return domain.ErrInvalidInput
	}
	if id := l.items[index].ID; id != "" {
		l.removed = append(l.removed, id)
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// RemovedIDs devuelve los IDs pendientes de borrar unidos por coma, con
// separador final (formato que espera el backend en remove_service: "7,").
func (l *Ledger) RemovedIDs() string {
	if len(l.removed) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, id := range l.removed {
		sb.WriteString(id)
		sb.WriteString(",")
	}
	return sb.String()
}

// Items devuelve una copia de las líneas activas (el orden es significativo
// para la presentación).
func (l *Ledger) Items() []LineItem {
	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len cantidad de líneas activas.
func (l *Ledger) Len() int { return len(l.items) }

// ApplyUniformRates aplica el mismo descuento e IVA a todas las líneas.
// Es el mapeo del flujo "simple" de creación (un descuento/IVA a nivel de
// factura) sobre el modo canónico por línea.
func (l *Ledger) ApplyUniformRates(discountPct, vatPct decimal.Decimal) {
	for i := range l.items {
		l.items[i].DiscountPercent = clampPercent(discountPct)
		l.items[i].VATPercent = clampPercent(vatPct)
		l.items[i].Recalculate()
	}
}

func clampPercent(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(cien) {
		return cien
	}
	return d
}
