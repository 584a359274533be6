package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo consultas agregadas de solo lectura para reportes de cartera.
type ReportsRepo struct {
	q Querier
}

// NewReportsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportsRepository(q Querier) *ReportsRepo {
	return &ReportsRepo{q: q}
}

// ReceivablesSummary agrega facturado, pagado y saldo de la empresa, más el
// conteo de facturas por estado.
func (r *ReportsRepo) ReceivablesSummary(companyID string) (*repository.ReceivablesSummary, error) {
	ctx := context.Background()
	summary := &repository.ReceivablesSummary{CountByStatus: map[string]int{}}

	totalsQuery := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(paid_amount), 0), COALESCE(SUM(due_amount), 0)
		FROM invoices WHERE company_id = $1`
	err := r.q.QueryRow(ctx, totalsQuery, companyID).Scan(
		&summary.TotalInvoiced, &summary.TotalPaid, &summary.TotalDue,
	)
	if err != nil {
		return nil, fmt.Errorf("receivables totals: %w", err)
	}

	countQuery := `SELECT status, COUNT(*) FROM invoices WHERE company_id = $1 GROUP BY status`
	rows, err := r.q.Query(ctx, countQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("receivables counts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		summary.CountByStatus[status] = count
	}
	return summary, rows.Err()
}

// MonthlyRevenue devuelve el facturado y lo recaudado por mes de emisión,
// para los últimos N meses.
func (r *ReportsRepo) MonthlyRevenue(companyID string, months int) ([]*repository.MonthlyRevenue, error) {
	query := `
		SELECT date_trunc('month', i.issue_date) AS month,
			COALESCE(SUM(i.total_amount), 0) AS invoiced,
			COALESCE((
				SELECT SUM(p.amount) FROM payments p
				JOIN invoices pi ON pi.id = p.invoice_id
				WHERE pi.company_id = $1
				AND date_trunc('month', p.date) = date_trunc('month', i.issue_date)
			), 0) AS collected
		FROM invoices i
		WHERE i.company_id = $1
		AND i.issue_date >= date_trunc('month', now()) - ($2 || ' months')::interval
		GROUP BY 1 ORDER BY 1`
	rows, err := r.q.Query(context.Background(), query, companyID, months)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	defer rows.Close()
	var list []*repository.MonthlyRevenue
	for rows.Next() {
		var m repository.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Invoiced, &m.Collected); err != nil {
			return nil, fmt.Errorf("scan monthly revenue: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
