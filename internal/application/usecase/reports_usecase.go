package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

const (
	defaultMonths = 6
	maxMonths     = 24
)

// ReportsUseCase orquesta las consultas agregadas de cartera: el resumen de
// facturado/pagado/pendiente y la serie mensual de ingresos del dashboard.
type ReportsUseCase struct {
	reportsRepo repository.ReportsRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(reportsRepo repository.ReportsRepository) *ReportsUseCase {
	return &ReportsUseCase{reportsRepo: reportsRepo}
}

// GetReceivablesSummary devuelve la cartera agregada de la empresa.
func (uc *ReportsUseCase) GetReceivablesSummary(ctx context.Context, companyID string) (*dto.ReceivablesSummaryResponse, error) {
	summary, err := uc.reportsRepo.ReceivablesSummary(companyID)
	if err != nil {
		return nil, fmt.Errorf("reportes: cartera: %w", err)
	}
	counts := summary.CountByStatus
	if counts == nil {
		counts = map[string]int{}
	}
	return &dto.ReceivablesSummaryResponse{
		TotalInvoiced: summary.TotalInvoiced.Round(2),
		TotalPaid:     summary.TotalPaid.Round(2),
		TotalDue:      summary.TotalDue.Round(2),
		CountByStatus: counts,
	}, nil
}

// GetMonthlyRevenue devuelve la serie mensual facturado vs recaudado.
func (uc *ReportsUseCase) GetMonthlyRevenue(ctx context.Context, companyID string, months int) ([]dto.MonthlyRevenueDTO, error) {
	if months <= 0 {
		months = defaultMonths
	}
	if months > maxMonths {
		months = maxMonths
	}
	rows, err := uc.reportsRepo.MonthlyRevenue(companyID, months)
	if err != nil {
		return nil, fmt.Errorf("reportes: ingresos mensuales: %w", err)
	}
	out := make([]dto.MonthlyRevenueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MonthlyRevenueDTO{
			Month:     r.Month.Format("2006-01"),
			Invoiced:  r.Invoiced.Round(2),
			Collected: r.Collected.Round(2),
		})
	}
	return out, nil
}
