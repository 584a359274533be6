package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
	domainbilling "github.com/tu-usuario/oficina-api/internal/domain/billing"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

// InvoiceUseCase crea y edita facturas: arma el ledger desde el payload del
// formulario (coacción incluida), recalcula los totales y persiste cabecera
// y líneas en una sola transacción.
type InvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
	serviceRepo repository.ServiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
	serviceRepo repository.ServiceRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		companyRepo: companyRepo,
		serviceRepo: serviceRepo,
	}
}

// BuildLedger convierte el payload de líneas en un ledger del dominio.
// Cada numérico llega como string crudo y se coacciona campo a campo, igual
// que en cada edición del formulario. Una línea sin nombre de servicio toma
// defaultService (el primero del catálogo).
func BuildLedger(items []dto.InvoiceItemPayload, defaultService string) *domainbilling.Ledger {
	lines := make([]domainbilling.LineItem, 0, len(items))
	for _, p := range items {
		name := strings.TrimSpace(p.ServiceName)
		if name == "" {
			name = defaultService
		}
		li := domainbilling.LineItem{ID: p.ID, ServiceName: name}
		li.Set(domainbilling.FieldQuantity, p.Quantity)
		li.Set(domainbilling.FieldUnitPrice, p.UnitPrice)
		li.Set(domainbilling.FieldDurationUnits, p.DurationUnits)
		li.Set(domainbilling.FieldDiscountPercent, p.DiscountPercent)
		li.Set(domainbilling.FieldVATPercent, p.VATPercent)
		lines = append(lines, li)
	}
	return domainbilling.NewLedger(lines...)
}

// CreateInvoice crea la factura: valida cliente, arma el ledger, recalcula
// totales y guarda cabecera y líneas. El saldo inicial es el total.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, companyID string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	ledger := BuildLedger(in.Items, uc.defaultServiceName(companyID))
	totals := domainbilling.Recompute(ledger.Items())

	now := time.Now()
	issueDate := parseDateOr(in.IssueDate, now)
	dueDays := 0
	if in.PaymentDueDays != nil && *in.PaymentDueDays > 0 {
		dueDays = *in.PaymentDueDays
	}
	number := in.Number
	if number == "" {
		number = fmt.Sprintf("INV-%d", now.Unix())
	}

	inv := &entity.Invoice{
		ID:               uuid.New().String(),
		CompanyID:        companyID,
		ClientID:         in.ClientID,
		BillingAddressID: in.BillingAddressID,
		AuthorityID:      in.AuthorityID,
		CurrencyID:       in.CurrencyID,
		Number:           number,
		IssueDate:        issueDate,
		DueDate:          issueDate.AddDate(0, 0, dueDays),
		PaymentDueDays:   dueDays,
		Notes:            in.Notes,
		SubTotal:         domainbilling.Round2(totals.SubTotal),
		TotalAmount:      domainbilling.Round2(totals.TotalAmount),
		PaidAmount:       decimal.Zero,
		DueAmount:        domainbilling.Round2(totals.TotalAmount),
		Status:           entity.InvoiceStatusDraft,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if in.MarkSent {
		inv.Status = entity.InvoiceStatusSent
	}
	items := itemsFromLedger(inv.ID, ledger)

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.PaymentRepository) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if item.ID == "" {
				item.ID = uuid.New().String()
			}
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, client.Name, items), nil
}

// UpdateInvoice edita una factura existente. Aplica primero los borrados
// pendientes (remove_service: IDs de líneas persistidas removidas en esta
// sesión de edición), luego upserta las líneas activas y recalcula los
// totales contra el pagado acumulado. Todo dentro de una transacción.
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, companyID, invoiceID string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	ledger := BuildLedger(in.Items, uc.defaultServiceName(companyID))
	totals := domainbilling.Recompute(ledger.Items())
	removeIDs := SplitRemoveIDs(in.RemoveItemIDs)

	now := time.Now()
	if in.ClientID != "" {
		inv.ClientID = in.ClientID
	}
	if in.BillingAddressID != "" {
		inv.BillingAddressID = in.BillingAddressID
	}
	if in.AuthorityID != "" {
		inv.AuthorityID = in.AuthorityID
	}
	if in.CurrencyID != "" {
		inv.CurrencyID = in.CurrencyID
	}
	if in.Number != "" {
		inv.Number = in.Number
	}
	if in.IssueDate != "" {
		inv.IssueDate = parseDateOr(in.IssueDate, inv.IssueDate)
	}
	if in.PaymentDueDays != nil {
		// nil = el formulario no tocó el plazo; 0 explícito = pago inmediato.
		inv.PaymentDueDays = *in.PaymentDueDays
		if inv.PaymentDueDays < 0 {
			inv.PaymentDueDays = 0
		}
	}
	inv.DueDate = inv.IssueDate.AddDate(0, 0, inv.PaymentDueDays)
	inv.Notes = in.Notes
	inv.SubTotal = domainbilling.Round2(totals.SubTotal)
	inv.TotalAmount = domainbilling.Round2(totals.TotalAmount)
	inv.DueAmount = domainbilling.Due(inv.TotalAmount, inv.PaidAmount)
	inv.Status = invoiceStatus(inv.Status, inv.TotalAmount, inv.PaidAmount, inv.DueAmount)
	if in.MarkSent && inv.Status == entity.InvoiceStatusDraft {
		inv.Status = entity.InvoiceStatusSent
	}
	inv.UpdatedAt = now

	items := itemsFromLedger(inv.ID, ledger)

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.PaymentRepository) error {
		if len(removeIDs) > 0 {
			if err := invoiceRepo.DeleteItems(inv.ID, removeIDs); err != nil {
				return err
			}
		}
		for _, item := range items {
			if item.ID == "" {
				item.ID = uuid.New().String()
				if err := invoiceRepo.CreateItem(item); err != nil {
					return err
				}
				continue
			}
			if err := invoiceRepo.UpdateItem(item); err != nil {
				return err
			}
		}
		return invoiceRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}

	clientName := ""
	if client, cErr := uc.clientRepo.GetByID(inv.ClientID); cErr == nil && client != nil {
		clientName = client.Name
	}
	return toInvoiceResponse(inv, clientName, items), nil
}

// GetInvoice obtiene una factura por ID con su detalle completo.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, companyID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	clientName := ""
	if client, cErr := uc.clientRepo.GetByID(inv.ClientID); cErr == nil && client != nil {
		clientName = client.Name
	}
	return toInvoiceResponse(inv, clientName, items), nil
}

// ListInvoices lista cabeceras de factura de la empresa.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, companyID string, limit, offset int) (*dto.InvoiceListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.invoiceRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.InvoiceListResponse{
		Items: make([]dto.InvoiceResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, inv := range list {
		out.Items = append(out.Items, *toInvoiceResponse(inv, "", nil))
	}
	return out, nil
}

// SplitRemoveIDs parte la lista "7,9," en IDs no vacíos.
func SplitRemoveIDs(joined string) []string {
	var ids []string
	for _, id := range strings.Split(joined, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// defaultServiceName devuelve el primer servicio del catálogo de la empresa
// (el que siembra una fila nueva). Vacío si el catálogo no tiene entradas.
func (uc *InvoiceUseCase) defaultServiceName(companyID string) string {
	services, err := uc.serviceRepo.ListByCompany(companyID, 1, 0)
	if err != nil || len(services) == 0 {
		return ""
	}
	return services[0].Name
}

// invoiceStatus deriva el estado desde los montos: paid con saldo en cero,
// partial con pagos a medias; si no hay pagos conserva el estado previo.
func invoiceStatus(current string, total, paid, due decimal.Decimal) string {
	if total.GreaterThan(decimal.Zero) && due.IsZero() {
		return entity.InvoiceStatusPaid
	}
	if paid.GreaterThan(decimal.Zero) {
		return entity.InvoiceStatusPartial
	}
	if current == "" {
		return entity.InvoiceStatusDraft
	}
	return current
}

func parseDateOr(raw string, fallback time.Time) time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return t
}

// itemsFromLedger materializa las líneas del ledger como entidades, con los
// montos redondeados a 2 decimales (frontera de persistencia). El ID queda
// vacío en líneas nunca persistidas: es lo que distingue un INSERT de un
// UPDATE al guardar.
func itemsFromLedger(invoiceID string, ledger *domainbilling.Ledger) []*entity.InvoiceItem {
	lines := ledger.Items()
	items := make([]*entity.InvoiceItem, 0, len(lines))
	for i, li := range lines {
		items = append(items, &entity.InvoiceItem{
			ID:              li.ID,
			InvoiceID:       invoiceID,
			ServiceName:     li.ServiceName,
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitPrice,
			DurationUnits:   li.DurationUnits,
			DiscountPercent: li.DiscountPercent,
			VATPercent:      li.VATPercent,
			Amount:          domainbilling.Round2(li.Amount),
			DiscountAmount:  domainbilling.Round2(li.DiscountAmount),
			VATAmount:       domainbilling.Round2(li.VATAmount),
			LineTotal:       domainbilling.Round2(li.LineTotal),
			Position:        i,
		})
	}
	return items
}

func toInvoiceResponse(inv *entity.Invoice, clientName string, items []*entity.InvoiceItem) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:               inv.ID,
		CompanyID:        inv.CompanyID,
		ClientID:         inv.ClientID,
		ClientName:       clientName,
		BillingAddressID: inv.BillingAddressID,
		AuthorityID:      inv.AuthorityID,
		CurrencyID:       inv.CurrencyID,
		Number:           inv.Number,
		IssueDate:        inv.IssueDate.Format("2006-01-02"),
		DueDate:          inv.DueDate.Format("2006-01-02"),
		Notes:            inv.Notes,
		SubTotal:         inv.SubTotal,
		TotalAmount:      inv.TotalAmount,
		PaidAmount:       inv.PaidAmount,
		DueAmount:        inv.DueAmount,
		Status:           inv.Status,
		Items:            make([]dto.InvoiceItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:              item.ID,
			ServiceName:     item.ServiceName,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DurationUnits:   item.DurationUnits,
			DiscountPercent: item.DiscountPercent,
			VATPercent:      item.VATPercent,
			Amount:          item.Amount,
			DiscountAmount:  item.DiscountAmount,
			VATAmount:       item.VATAmount,
			LineTotal:       item.LineTotal,
		})
	}
	return resp
}
