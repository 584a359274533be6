package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
	domainbilling "github.com/tu-usuario/oficina-api/internal/domain/billing"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

// PaymentUseCase registra pagos contra facturas y expone el estado de
// reconciliación. La historia de pagos previos es autoritativa de la base
// de datos; aquí solo se lee, nunca se reconstruye desde el cliente.
type PaymentUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
) *PaymentUseCase {
	return &PaymentUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		companyRepo: companyRepo,
	}
}

// GetPaymentState devuelve el total autoritativo de la factura, sus pagos
// previos y el saldo actual. Datos de cliente/receptor ausentes se degradan
// a vacío en lugar de fallar la lectura.
func (uc *PaymentUseCase) GetPaymentState(ctx context.Context, companyID, invoiceID string) (*dto.PaymentStateResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	payments, err := uc.paymentRepo.ListByInvoice(invoiceID)
	if err != nil {
		return nil, err
	}

	prior := priorFromPayments(payments)
	priorTotal := domainbilling.PriorTotalPaid(prior)
	state := &dto.PaymentStateResponse{
		InvoiceID:      inv.ID,
		InvoiceNumber:  inv.Number,
		TotalAmount:    inv.TotalAmount,
		PriorPayments:  make([]dto.PriorPaymentDTO, 0, len(prior)),
		PriorTotalPaid: priorTotal,
		DueAmount:      domainbilling.ComputeDue(inv.TotalAmount, priorTotal, decimal.Zero),
	}
	for _, p := range prior {
		state.PriorPayments = append(state.PriorPayments, dto.PriorPaymentDTO{
			Date:   p.Date.Format("2006-01-02"),
			Amount: p.Amount,
		})
	}
	if client, cErr := uc.clientRepo.GetByID(inv.ClientID); cErr == nil && client != nil {
		state.ClientInfo = dto.ClientResponse{
			ID: client.ID, CompanyID: client.CompanyID, Name: client.Name,
			TaxID: client.TaxID, Email: client.Email, Phone: client.Phone, Address: client.Address,
		}
	}
	if company, cErr := uc.companyRepo.GetByID(inv.CompanyID); cErr == nil && company != nil {
		state.ReceiverInfo = dto.CompanyResponse{
			ID: company.ID, Name: company.Name, TaxID: company.TaxID,
			Address: company.Address, Phone: company.Phone, Email: company.Email,
		}
	}
	return state, nil
}

// RecordPayment registra un pago nuevo: coacciona el monto, calcula el saldo
// con la historia previa autoritativa y actualiza los acumulados de la
// factura. Pago y factura se escriben en la misma transacción. markSent
// además marca la factura como enviada al cliente (acción "sent").
func (uc *PaymentUseCase) RecordPayment(ctx context.Context, companyID string, in dto.SavePaymentRequest, markSent bool) (*dto.PaymentResponse, error) {
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
	// Una factura saldada no admite pagos nuevos; corregir un pago existente
	// pasa por UpdatePayment.
	if inv.Status == entity.InvoiceStatusPaid {
		return nil, domain.ErrInvoiceNotPayable
	}

	amount := domainbilling.CoerceDecimal(in.CurrentPaidAmount)
	now := time.Now()
	payment := &entity.Payment{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		InvoiceID:       inv.ID,
		TransactionID:   in.TransactionID,
		TransactionType: in.TransactionType,
		Date:            parseDateOr(in.Date, now),
		Amount:          domainbilling.Round2(amount),
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		// La historia previa se lee dentro de la tx: el saldo se calcula
		// contra lo realmente persistido, no contra lo que vio el formulario.
		existing, err := paymentRepo.ListByInvoice(inv.ID)
		if err != nil {
			return err
		}
		priorTotal := domainbilling.PriorTotalPaid(priorFromPayments(existing))

		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		return uc.applyToInvoice(invoiceRepo, inv, priorTotal.Add(payment.Amount), markSent, now)
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment, inv), nil
}

// UpdatePayment edita un pago existente y reconcilia los acumulados de la
// factura contra la lista completa de pagos resultante.
func (uc *PaymentUseCase) UpdatePayment(ctx context.Context, companyID, paymentID string, in dto.SavePaymentRequest, markSent bool) (*dto.PaymentResponse, error) {
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

	now := time.Now()
	payment.Amount = domainbilling.Round2(domainbilling.CoerceDecimal(in.CurrentPaidAmount))
	if in.TransactionID != "" {
		payment.TransactionID = in.TransactionID
	}
	if in.TransactionType != "" {
		payment.TransactionType = in.TransactionType
	}
	if in.Date != "" {
		payment.Date = parseDateOr(in.Date, payment.Date)
	}
	payment.Notes = in.Notes
	payment.UpdatedAt = now

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, paymentRepo repository.PaymentRepository) error {
		if err := paymentRepo.Update(payment); err != nil {
			return err
		}
		// Tras la edición, el pagado acumulado es la suma de todos los pagos.
		all, err := paymentRepo.ListByInvoice(inv.ID)
		if err != nil {
			return err
		}
		paidTotal := decimal.Zero
		for _, p := range all {
			if p.ID == payment.ID {
				paidTotal = paidTotal.Add(payment.Amount)
				continue
			}
			paidTotal = paidTotal.Add(p.Amount)
		}
		return uc.applyToInvoice(invoiceRepo, inv, paidTotal, markSent, now)
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment, inv), nil
}

// applyToInvoice actualiza pagado/saldo/estado de la factura. El saldo se
// clampea a cero si los pagos exceden el total.
func (uc *PaymentUseCase) applyToInvoice(invoiceRepo repository.InvoiceRepository, inv *entity.Invoice, paidTotal decimal.Decimal, markSent bool, now time.Time) error {
	inv.PaidAmount = domainbilling.Round2(paidTotal)
	inv.DueAmount = domainbilling.Due(inv.TotalAmount, inv.PaidAmount)
	inv.Status = invoiceStatus(inv.Status, inv.TotalAmount, inv.PaidAmount, inv.DueAmount)
	if markSent && inv.Status == entity.InvoiceStatusDraft {
		inv.Status = entity.InvoiceStatusSent
	}
	inv.UpdatedAt = now
	return invoiceRepo.Update(inv)
}

func priorFromPayments(payments []*entity.Payment) []domainbilling.PriorPayment {
	prior := make([]domainbilling.PriorPayment, 0, len(payments))
	for _, p := range payments {
		prior = append(prior, domainbilling.PriorPayment{Date: p.Date, Amount: p.Amount})
	}
	return prior
}

func toPaymentResponse(payment *entity.Payment, inv *entity.Invoice) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:              payment.ID,
		InvoiceID:       payment.InvoiceID,
		TransactionID:   payment.TransactionID,
		TransactionType: payment.TransactionType,
		Date:            payment.Date.Format("2006-01-02"),
		Amount:          payment.Amount,
		Notes:           payment.Notes,
		InvoicePaid:     inv.PaidAmount,
		InvoiceDue:      inv.DueAmount,
		InvoiceStatus:   inv.Status,
	}
}
