package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oficina-api/internal/domain"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository: cabeceras y líneas.
// Los montos son NUMERIC en la base; el codec de shopspring los mapea directo.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (
			id, company_id, client_id, billing_address_id, authority_id, currency_id,
			number, issue_date, due_date, payment_due_days, notes,
			sub_total, total_amount, paid_amount, due_amount, status, created_at, updated_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''),
			$7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.CompanyID, inv.ClientID, inv.BillingAddressID, inv.AuthorityID, inv.CurrencyID,
		inv.Number, inv.IssueDate, inv.DueDate, inv.PaymentDueDays, inv.Notes,
		inv.SubTotal, inv.TotalAmount, inv.PaidAmount, inv.DueAmount, inv.Status, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update actualiza la cabecera de una factura.
func (r *InvoiceRepo) Update(inv *entity.Invoice) error {
	query := `
		UPDATE invoices SET
			client_id = $2, billing_address_id = NULLIF($3, ''), authority_id = NULLIF($4, ''),
			currency_id = NULLIF($5, ''), number = $6, issue_date = $7, due_date = $8,
			payment_due_days = $9, notes = $10, sub_total = $11, total_amount = $12,
			paid_amount = $13, due_amount = $14, status = $15, updated_at = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ClientID, inv.BillingAddressID, inv.AuthorityID, inv.CurrencyID,
		inv.Number, inv.IssueDate, inv.DueDate, inv.PaymentDueDays, inv.Notes,
		inv.SubTotal, inv.TotalAmount, inv.PaidAmount, inv.DueAmount, inv.Status, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, client_id, COALESCE(billing_address_id::text, ''), COALESCE(authority_id::text, ''),
			COALESCE(currency_id::text, ''), number, issue_date, due_date, payment_due_days, notes,
			sub_total, total_amount, paid_amount, due_amount, status, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.BillingAddressID, &inv.AuthorityID,
		&inv.CurrencyID, &inv.Number, &inv.IssueDate, &inv.DueDate, &inv.PaymentDueDays, &inv.Notes,
		&inv.SubTotal, &inv.TotalAmount, &inv.PaidAmount, &inv.DueAmount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListByCompany lista cabeceras de factura de la empresa, más recientes primero.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, client_id, COALESCE(billing_address_id::text, ''), COALESCE(authority_id::text, ''),
			COALESCE(currency_id::text, ''), number, issue_date, due_date, payment_due_days, notes,
			sub_total, total_amount, paid_amount, due_amount, status, created_at, updated_at
		FROM invoices WHERE company_id = $1 ORDER BY issue_date DESC, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.ClientID, &inv.BillingAddressID, &inv.AuthorityID,
			&inv.CurrencyID, &inv.Number, &inv.IssueDate, &inv.DueDate, &inv.PaymentDueDays, &inv.Notes,
			&inv.SubTotal, &inv.TotalAmount, &inv.PaidAmount, &inv.DueAmount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// CreateItem persiste una línea de factura.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (
			id, invoice_id, service_name, quantity, unit_price, duration_units,
			discount_percent, vat_percent, amount, discount_amount, vat_amount, line_total, position
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.ServiceName, item.Quantity, item.UnitPrice, item.DurationUnits,
		item.DiscountPercent, item.VATPercent, item.Amount, item.DiscountAmount, item.VATAmount,
		item.LineTotal, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// UpdateItem actualiza una línea existente.
func (r *InvoiceRepo) UpdateItem(item *entity.InvoiceItem) error {
	query := `
		UPDATE invoice_items SET
			service_name = $2, quantity = $3, unit_price = $4, duration_units = $5,
			discount_percent = $6, vat_percent = $7, amount = $8, discount_amount = $9,
			vat_amount = $10, line_total = $11, position = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ServiceName, item.Quantity, item.UnitPrice, item.DurationUnits,
		item.DiscountPercent, item.VATPercent, item.Amount, item.DiscountAmount, item.VATAmount,
		item.LineTotal, item.Position,
	)
	if err != nil {
		return fmt.Errorf("update invoice item: %w", err)
	}
	return nil
}

// DeleteItems borra las líneas indicadas de la factura (borrado diferido que
// el formulario acumula durante la sesión de edición).
func (r *InvoiceRepo) DeleteItems(invoiceID string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	query := `DELETE FROM invoice_items WHERE invoice_id = $1 AND id = ANY($2)`
	_, err := r.q.Exec(context.Background(), query, invoiceID, itemIDs)
	if err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	return nil
}

// GetItemsByInvoiceID obtiene las líneas de la factura en orden de presentación.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, service_name, quantity, unit_price, duration_units,
			discount_percent, vat_percent, amount, discount_amount, vat_amount, line_total, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var item entity.InvoiceItem
		if err := rows.Scan(
			&item.ID, &item.InvoiceID, &item.ServiceName, &item.Quantity, &item.UnitPrice, &item.DurationUnits,
			&item.DiscountPercent, &item.VATPercent, &item.Amount, &item.DiscountAmount, &item.VATAmount,
			&item.LineTotal, &item.Position,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
