package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
	domainbilling "github.com/tu-usuario/oficina-api/internal/domain/billing"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

// PDFUseCase arma los documentos de facturación. El preview de factura se
// renderiza desde el payload en memoria sin tocar la base de datos: es la
// vista previa del formulario, no un documento de una factura guardada.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	clientRepo   repository.ClientRepository
	companyRepo  repository.CompanyRepository
	currencyRepo repository.CurrencyRepository
	serviceRepo  repository.ServiceRepository
	invoiceGen   InvoicePDFGenerator
	paymentGen   PaymentPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
	currencyRepo repository.CurrencyRepository,
	serviceRepo repository.ServiceRepository,
	invoiceGen InvoicePDFGenerator,
	paymentGen PaymentPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		clientRepo:   clientRepo,
		companyRepo:  companyRepo,
		currencyRepo: currencyRepo,
		serviceRepo:  serviceRepo,
		invoiceGen:   invoiceGen,
		paymentGen:   paymentGen,
	}
}

// PreviewInvoicePDF renderiza el estado actual del formulario a PDF sin
// persistir nada: arma el ledger desde el payload, recalcula totales y
// resuelve los datos de referencia (empresa, cliente, moneda, cuenta, firma).
func (uc *PDFUseCase) PreviewInvoicePDF(ctx context.Context, companyID string, in dto.SaveInvoiceRequest) ([]byte, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if client.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	defaultService := ""
	if services, sErr := uc.serviceRepo.ListByCompany(companyID, 1, 0); sErr == nil && len(services) > 0 {
		defaultService = services[0].Name
	}
	ledger := BuildLedger(in.Items, defaultService)
	totals := domainbilling.Recompute(ledger.Items())

	now := time.Now()
	issueDate := parseDateOr(in.IssueDate, now)
	dueDays := 0
	if in.PaymentDueDays != nil && *in.PaymentDueDays > 0 {
		dueDays = *in.PaymentDueDays
	}
	inv := &entity.Invoice{
		CompanyID:        companyID,
		ClientID:         in.ClientID,
		BillingAddressID: in.BillingAddressID,
		AuthorityID:      in.AuthorityID,
		CurrencyID:       in.CurrencyID,
		Number:           in.Number,
		IssueDate:        issueDate,
		DueDate:          issueDate.AddDate(0, 0, dueDays),
		PaymentDueDays:   dueDays,
		Notes:            in.Notes,
		SubTotal:         domainbilling.Round2(totals.SubTotal),
		TotalAmount:      domainbilling.Round2(totals.TotalAmount),
		PaidAmount:       decimal.Zero,
		DueAmount:        domainbilling.Round2(totals.TotalAmount),
		Status:           entity.InvoiceStatusDraft,
	}

	data := &InvoiceDocData{
		Invoice: inv,
		Items:   itemsFromLedger("", ledger),
		Company: company,
		Client:  client,
	}
	// Datos de referencia opcionales: si faltan, el documento sale sin ellos.
	if in.CurrencyID != "" {
		if currency, cErr := uc.currencyRepo.GetByID(in.CurrencyID); cErr == nil && currency != nil {
			data.Currency = currency
		}
	}
	if in.BillingAddressID != "" {
		if addr, aErr := uc.companyRepo.GetBillingAddress(in.BillingAddressID); aErr == nil && addr != nil {
			data.Account = addr
		}
	}
	if in.AuthorityID != "" {
		if sig, sErr := uc.companyRepo.GetSignature(in.AuthorityID); sErr == nil && sig != nil {
			data.Signature = sig
		}
	}
	return uc.invoiceGen.GenerateInvoicePDF(ctx, data)
}

// InvoicePDF renderiza una factura ya guardada con sus líneas persistidas.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, companyID, invoiceID string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}
	data := &InvoiceDocData{Invoice: inv, Items: items}
	if err := uc.fillReferenceData(inv, data); err != nil {
		return nil, err
	}
	return uc.invoiceGen.GenerateInvoicePDF(ctx, data)
}

// PaymentReceiptPDF renderiza el recibo de un pago registrado, con la
// historia de pagos previos y el saldo resultante de la factura.
func (uc *PDFUseCase) PaymentReceiptPDF(ctx context.Context, companyID, paymentID string) ([]byte, error) {
	payment, err := uc.paymentRepo.GetByID(paymentID)
	if err != nil || payment == nil {
		return nil, domain.ErrNotFound
	}
	if payment.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	inv, err := uc.invoiceRepo.GetByID(payment.InvoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	all, err := uc.paymentRepo.ListByInvoice(inv.ID)
	if err != nil {
		return nil, err
	}
	prior := make([]*entity.Payment, 0, len(all))
	for _, p := range all {
		if p.ID != payment.ID {
			prior = append(prior, p)
		}
	}

	data := &PaymentDocData{Invoice: inv, Payment: payment, PriorPayments: prior}
	ref := &InvoiceDocData{Invoice: inv}
	if err := uc.fillReferenceData(inv, ref); err != nil {
		return nil, err
	}
	data.Company = ref.Company
	data.Client = ref.Client
	data.Currency = ref.Currency
	return uc.paymentGen.GeneratePaymentPDF(ctx, data)
}

// PreviewPaymentPDF renderiza el recibo del pago tal como está en el
// formulario, sin registrarlo: el pago en curso se arma en memoria desde el
// payload y toda la historia persistida cuenta como pagos previos.
func (uc *PDFUseCase) PreviewPaymentPDF(ctx context.Context, companyID string, in dto.SavePaymentRequest) ([]byte, error) {
	if in.InvoiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	prior, err := uc.paymentRepo.ListByInvoice(inv.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	amount := domainbilling.Round2(domainbilling.CoerceDecimal(in.CurrentPaidAmount))
	payment := &entity.Payment{
		CompanyID:       companyID,
		InvoiceID:       inv.ID,
		TransactionID:   in.TransactionID,
		TransactionType: in.TransactionType,
		Date:            parseDateOr(in.Date, now),
		Amount:          amount,
		Notes:           in.Notes,
	}
	// Saldo resultante proyectado sobre la factura en memoria, sin persistir.
	priorTotal := decimal.Zero
	for _, p := range prior {
		priorTotal = priorTotal.Add(p.Amount)
	}
	inv.PaidAmount = domainbilling.Round2(priorTotal.Add(amount))
	inv.DueAmount = domainbilling.ComputeDue(inv.TotalAmount, priorTotal, amount)

	data := &PaymentDocData{Invoice: inv, Payment: payment, PriorPayments: prior}
	ref := &InvoiceDocData{Invoice: inv}
	if err := uc.fillReferenceData(inv, ref); err != nil {
		return nil, err
	}
	data.Company = ref.Company
	data.Client = ref.Client
	data.Currency = ref.Currency
	return uc.paymentGen.GeneratePaymentPDF(ctx, data)
}

// fillReferenceData resuelve empresa, cliente y moneda de la factura.
// Empresa y cliente son obligatorios para el documento; la moneda no.
func (uc *PDFUseCase) fillReferenceData(inv *entity.Invoice, data *InvoiceDocData) error {
	company, err := uc.companyRepo.GetByID(inv.CompanyID)
	if err != nil || company == nil {
		return domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil || client == nil {
		return domain.ErrNotFound
	}
	data.Company = company
	data.Client = client
	if inv.CurrencyID != "" {
		if currency, cErr := uc.currencyRepo.GetByID(inv.CurrencyID); cErr == nil && currency != nil {
			data.Currency = currency
		}
	}
	if inv.BillingAddressID != "" {
		if addr, aErr := uc.companyRepo.GetBillingAddress(inv.BillingAddressID); aErr == nil && addr != nil {
			data.Account = addr
		}
	}
	if inv.AuthorityID != "" {
		if sig, sErr := uc.companyRepo.GetSignature(inv.AuthorityID); sErr == nil && sig != nil {
			data.Signature = sig
		}
	}
	return nil
}
