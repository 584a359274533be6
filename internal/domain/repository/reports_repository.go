package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceivablesSummary agrega la cartera de la empresa: facturado, pagado y
// saldo pendiente, más el conteo de facturas por estado.
type ReceivablesSummary struct {
	TotalInvoiced decimal.Decimal
	TotalPaid     decimal.Decimal
	TotalDue      decimal.Decimal
	CountByStatus map[string]int
}

// MonthlyRevenue es el facturado/recaudado de un mes (para la gráfica del dashboard).
type MonthlyRevenue struct {
	Month     time.Time
	Invoiced  decimal.Decimal
	Collected decimal.Decimal
}

// ReportsRepository define consultas agregadas de solo lectura para reportes.
type ReportsRepository interface {
	ReceivablesSummary(companyID string) (*ReceivablesSummary, error)
	MonthlyRevenue(companyID string, months int) ([]*MonthlyRevenue, error)
}
