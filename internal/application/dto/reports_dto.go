package dto

import "github.com/shopspring/decimal"

// ReceivablesSummaryResponse resumen de cartera de la empresa.
type ReceivablesSummaryResponse struct {
	TotalInvoiced decimal.Decimal `json:"total_invoiced"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalDue      decimal.Decimal `json:"total_due"`
	CountByStatus map[string]int  `json:"count_by_status"`
}

// MonthlyRevenueDTO punto mensual de facturado vs recaudado.
type MonthlyRevenueDTO struct {
	Month     string          `json:"month"` // YYYY-MM
	Invoiced  decimal.Decimal `json:"invoiced"`
	Collected decimal.Decimal `json:"collected"`
}
