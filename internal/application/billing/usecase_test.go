package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appbilling "github.com/tu-usuario/oficina-api/internal/application/billing"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Las transacciones del fake
// ejecutan la función directamente sobre los mismos repos: suficiente para
// verificar la orquestación (orden de borrados, upserts, reconciliación).
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string]*entity.InvoiceItem
	deleted  [][]string // argumentos de cada llamada a DeleteItems
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: map[string]*entity.Invoice{},
		items:    map[string]*entity.InvoiceItem{},
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	if _, ok := r.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CompanyID == companyID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) UpdateItem(item *entity.InvoiceItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) DeleteItems(invoiceID string, itemIDs []string) error {
	r.deleted = append(r.deleted, itemIDs)
	for _, id := range itemIDs {
		delete(r.items, id)
	}
	return nil
}

func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	for _, item := range r.items {
		if item.InvoiceID == invoiceID {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[string]*entity.Payment
	order    []string
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: map[string]*entity.Payment{}}
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	cp := *p
	r.payments[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakePaymentRepo) Update(p *entity.Payment) error {
	if _, ok := r.payments[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, id := range r.order {
		p := r.payments[id]
		if p != nil && p.InvoiceID == invoiceID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) GetByCompanyAndTaxID(companyID, taxID string) (*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *fakeClientRepo) Update(c *entity.Client) error { return nil }
func (r *fakeClientRepo) Delete(id string) error        { return nil }

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *fakeCompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) Update(c *entity.Company) error                      { return nil }
func (r *fakeCompanyRepo) CreateBillingAddress(a *entity.BillingAddress) error { return nil }
func (r *fakeCompanyRepo) ListBillingAddresses(companyID string) ([]*entity.BillingAddress, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) GetBillingAddress(id string) (*entity.BillingAddress, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) CreateSignature(s *entity.AuthoritySignature) error { return nil }
func (r *fakeCompanyRepo) ListSignatures(companyID string) ([]*entity.AuthoritySignature, error) {
	return nil, nil
}
func (r *fakeCompanyRepo) GetSignature(id string) (*entity.AuthoritySignature, error) {
	return nil, nil
}

type fakeServiceRepo struct {
	services []*entity.Service
}

func (r *fakeServiceRepo) Create(s *entity.Service) error            { return nil }
func (r *fakeServiceRepo) GetByID(id string) (*entity.Service, error) { return nil, nil }
func (r *fakeServiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Service, error) {
	if limit > 0 && limit < len(r.services) {
		return r.services[:limit], nil
	}
	return r.services, nil
}
func (r *fakeServiceRepo) Update(s *entity.Service) error { return nil }
func (r *fakeServiceRepo) Delete(id string) error         { return nil }

type fakeTxRunner struct {
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

func (f *fakeTxRunner) RunBilling(ctx context.Context, fn func(repository.InvoiceRepository, repository.PaymentRepository) error) error {
	return fn(f.invoiceRepo, f.paymentRepo)
}

type fakeCurrencyRepo struct{}

func (r *fakeCurrencyRepo) Create(c *entity.Currency) error                 { return nil }
func (r *fakeCurrencyRepo) GetByID(id string) (*entity.Currency, error)     { return nil, nil }
func (r *fakeCurrencyRepo) GetByCode(code string) (*entity.Currency, error) { return nil, nil }
func (r *fakeCurrencyRepo) List() ([]*entity.Currency, error)               { return nil, nil }

type fakeInvoiceGen struct{}

func (g *fakeInvoiceGen) GenerateInvoicePDF(_ context.Context, data *appbilling.InvoiceDocData) ([]byte, error) {
	return []byte("%PDF-factura"), nil
}

// fakePaymentGen guarda el último documento recibido para inspeccionarlo.
type fakePaymentGen struct {
	lastData *appbilling.PaymentDocData
}

func (g *fakePaymentGen) GeneratePaymentPDF(_ context.Context, data *appbilling.PaymentDocData) ([]byte, error) {
	g.lastData = data
	return []byte("%PDF-recibo"), nil
}

// ──────────────────────────────────────────────────────────────────────────────

type billingFixture struct {
	invoiceRepo *fakeInvoiceRepo
	paymentRepo *fakePaymentRepo
	clientRepo  *fakeClientRepo
	companyRepo *fakeCompanyRepo
	serviceRepo *fakeServiceRepo
	paymentGen  *fakePaymentGen
	invoices    *appbilling.InvoiceUseCase
	payments    *appbilling.PaymentUseCase
	pdfs        *appbilling.PDFUseCase
}

func newBillingFixture() *billingFixture {
	invoiceRepo := newFakeInvoiceRepo()
	paymentRepo := newFakePaymentRepo()
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		"cli-1": {ID: "cli-1", CompanyID: "co-1", Name: "Acme SAS"},
	}}
	companyRepo := &fakeCompanyRepo{companies: map[string]*entity.Company{
		"co-1": {ID: "co-1", Name: "Oficina Ltda", TaxID: "900123456"},
	}}
	serviceRepo := &fakeServiceRepo{services: []*entity.Service{
		{ID: "svc-1", CompanyID: "co-1", Name: "Consultoría"},
	}}
	tx := &fakeTxRunner{invoiceRepo: invoiceRepo, paymentRepo: paymentRepo}
	paymentGen := &fakePaymentGen{}
	return &billingFixture{
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
		clientRepo:  clientRepo,
		companyRepo: companyRepo,
		serviceRepo: serviceRepo,
		paymentGen:  paymentGen,
		invoices:    appbilling.NewInvoiceUseCase(tx, invoiceRepo, clientRepo, companyRepo, serviceRepo),
		payments:    appbilling.NewPaymentUseCase(tx, invoiceRepo, paymentRepo, clientRepo, companyRepo),
		pdfs: appbilling.NewPDFUseCase(invoiceRepo, paymentRepo, clientRepo, companyRepo,
			&fakeCurrencyRepo{}, serviceRepo, &fakeInvoiceGen{}, paymentGen),
	}
}

func intPtr(n int) *int { return &n }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateInvoice_TotalesDesdeElPayload(t *testing.T) {
	fx := newBillingFixture()

	resp, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID:  "cli-1",
		IssueDate: "2026-01-15",
		Items: []dto.InvoiceItemPayload{
			{ServiceName: "Diseño", Quantity: "1", UnitPrice: "500", DiscountPercent: "10", VATPercent: "15"},
		},
	})
	require.NoError(t, err)

	// 500 − 10% = 450; +15% IVA = 517.50
	assert.True(t, dec("500").Equal(resp.SubTotal), "subtotal antes de descuento e IVA")
	assert.True(t, dec("517.5").Equal(resp.TotalAmount))
	assert.True(t, resp.PaidAmount.IsZero())
	assert.True(t, dec("517.5").Equal(resp.DueAmount), "el saldo inicial es el total")
	assert.Equal(t, entity.InvoiceStatusDraft, resp.Status)
	require.Len(t, resp.Items, 1)
}

func TestCreateInvoice_MarcaEnviadaConSent(t *testing.T) {
	fx := newBillingFixture()

	resp, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items: []dto.InvoiceItemPayload{
			{ServiceName: "Diseño", Quantity: "1", UnitPrice: "100"},
		},
		MarkSent: true,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusSent, resp.Status,
		"guardar con ?sent=true deja la factura enviada, no en borrador")
}

func TestCreateInvoice_CoaccionaEntradasInvalidas(t *testing.T) {
	fx := newBillingFixture()

	resp, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items: []dto.InvoiceItemPayload{
			// cantidad no numérica → 0, precio negativo → 0: la línea vale 0
			{ServiceName: "Diseño", Quantity: "abc", UnitPrice: "-50"},
			{ServiceName: "Horas", Quantity: "2.9", UnitPrice: "100"}, // cantidad truncada a 2
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("200").Equal(resp.TotalAmount), "solo la línea válida suma, con cantidad truncada")
}

func TestCreateInvoice_LineaSinNombreTomaElCatalogo(t *testing.T) {
	fx := newBillingFixture()

	resp, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items: []dto.InvoiceItemPayload{
			{ServiceName: "  ", Quantity: "1", UnitPrice: "100"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Consultoría", resp.Items[0].ServiceName, "primera entrada del catálogo como servicio por defecto")
}

func TestCreateInvoice_ClienteDeOtraEmpresa(t *testing.T) {
	fx := newBillingFixture()
	fx.clientRepo.clients["cli-ajeno"] = &entity.Client{ID: "cli-ajeno", CompanyID: "co-otra"}

	_, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-ajeno",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "X", Quantity: "1", UnitPrice: "1"}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateInvoice_AplicaBorradosPendientes(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items: []dto.InvoiceItemPayload{
			{ServiceName: "Diseño", Quantity: "1", UnitPrice: "500"},
			{ServiceName: "Horas", Quantity: "2", UnitPrice: "100"},
		},
	})
	require.NoError(t, err)
	removedID := created.Items[1].ID
	keptID := created.Items[0].ID

	resp, err := fx.invoices.UpdateInvoice(context.Background(), "co-1", created.ID, dto.SaveInvoiceRequest{
		Items: []dto.InvoiceItemPayload{
			{ID: keptID, ServiceName: "Diseño", Quantity: "1", UnitPrice: "500"},
		},
		RemoveItemIDs: removedID + ",", // formato "7," del borrado diferido
	})
	require.NoError(t, err)

	require.Len(t, fx.invoiceRepo.deleted, 1, "una sola llamada a DeleteItems")
	assert.Equal(t, []string{removedID}, fx.invoiceRepo.deleted[0])
	assert.True(t, dec("500").Equal(resp.TotalAmount))

	remaining, _ := fx.invoiceRepo.GetItemsByInvoiceID(created.ID)
	assert.Len(t, remaining, 1, "la línea removida ya no existe")
}

func TestUpdateInvoice_SaldoContraPagadoAcumulado(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	_, err = fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeTransfer,
		CurrentPaidAmount: "500",
	}, false)
	require.NoError(t, err)

	// Se edita la factura bajando el total por debajo de lo pagado
	resp, err := fx.invoices.UpdateInvoice(context.Background(), "co-1", created.ID, dto.SaveInvoiceRequest{
		Items: []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "400"}},
	})
	require.NoError(t, err)

	assert.True(t, dec("400").Equal(resp.TotalAmount))
	assert.True(t, resp.DueAmount.IsZero(), "el saldo nunca es negativo aunque lo pagado exceda el total")
	assert.Equal(t, entity.InvoiceStatusPaid, resp.Status)
}

func TestUpdateInvoice_CreaLineaNuevaEnEdicion(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "500"}},
	})
	require.NoError(t, err)

	// Se conserva la línea existente y se agrega una nueva sin ID: la nueva
	// debe insertarse, no enrutarse a un UPDATE que no encuentra la fila.
	resp, err := fx.invoices.UpdateInvoice(context.Background(), "co-1", created.ID, dto.SaveInvoiceRequest{
		Items: []dto.InvoiceItemPayload{
			{ID: created.Items[0].ID, ServiceName: "Diseño", Quantity: "1", UnitPrice: "500"},
			{ServiceName: "Horas", Quantity: "2", UnitPrice: "100"},
		},
	})
	require.NoError(t, err)

	assert.True(t, dec("700").Equal(resp.TotalAmount))
	require.Len(t, resp.Items, 2)
	for _, item := range resp.Items {
		assert.NotEmpty(t, item.ID, "toda línea guardada recibe un ID")
	}

	// Las filas persistidas explican el total de la cabecera.
	stored, err := fx.invoiceRepo.GetItemsByInvoiceID(created.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2, "la línea nueva quedó persistida")
	sum := decimal.Zero
	for _, item := range stored {
		sum = sum.Add(item.LineTotal)
	}
	assert.True(t, resp.TotalAmount.Equal(sum))
}

func TestUpdateInvoice_PlazoExplicitoACero(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID:       "cli-1",
		IssueDate:      "2026-01-15",
		PaymentDueDays: intPtr(30),
		Items:          []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "500"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-14", created.DueDate)

	// 0 explícito = pago contra entrega; distinto de no enviar el campo.
	resp, err := fx.invoices.UpdateInvoice(context.Background(), "co-1", created.ID, dto.SaveInvoiceRequest{
		PaymentDueDays: intPtr(0),
		Items: []dto.InvoiceItemPayload{
			{ID: created.Items[0].ID, ServiceName: "Diseño", Quantity: "1", UnitPrice: "500"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, resp.IssueDate, resp.DueDate, "con plazo 0 la factura vence el día de emisión")

	// Sin el campo, el plazo vigente no se toca.
	resp, err = fx.invoices.UpdateInvoice(context.Background(), "co-1", created.ID, dto.SaveInvoiceRequest{
		Items: []dto.InvoiceItemPayload{
			{ID: created.Items[0].ID, ServiceName: "Diseño", Quantity: "1", UnitPrice: "500"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, resp.IssueDate, resp.DueDate)
}

func TestRecordPayment_PagoParcial(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	resp, err := fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeCash,
		Date:              "2026-02-01",
		CurrentPaidAmount: "500",
	}, false)
	require.NoError(t, err)

	assert.True(t, dec("500").Equal(resp.InvoicePaid))
	assert.True(t, dec("350").Equal(resp.InvoiceDue))
	assert.Equal(t, entity.InvoiceStatusPartial, resp.InvoiceStatus)
}

func TestRecordPayment_SobrepagoClampeaElSaldo(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	_, err = fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeTransfer,
		CurrentPaidAmount: "500",
	}, false)
	require.NoError(t, err)

	resp, err := fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeTransfer,
		CurrentPaidAmount: "400",
	}, false)
	require.NoError(t, err)

	assert.True(t, dec("900").Equal(resp.InvoicePaid), "lo pagado registra el exceso")
	assert.True(t, resp.InvoiceDue.IsZero(), "el saldo se clampea a cero, nunca negativo")
	assert.Equal(t, entity.InvoiceStatusPaid, resp.InvoiceStatus)
}

func TestRecordPayment_FacturaSaldadaNoAdmitePagos(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	_, err = fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeTransfer,
		CurrentPaidAmount: "850",
	}, false)
	require.NoError(t, err)

	_, err = fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeTransfer,
		CurrentPaidAmount: "100",
	}, false)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotPayable, "una factura saldada rechaza pagos nuevos")
}

func TestPreviewPaymentPDF_NoRegistraElPago(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	_, err = fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeTransfer,
		CurrentPaidAmount: "500",
	}, false)
	require.NoError(t, err)

	pdfBytes, err := fx.pdfs.PreviewPaymentPDF(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeCash,
		CurrentPaidAmount: "350",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)

	// El documento proyecta el saldo con la historia previa, pero nada se persiste.
	require.NotNil(t, fx.paymentGen.lastData)
	assert.True(t, dec("350").Equal(fx.paymentGen.lastData.Payment.Amount))
	require.Len(t, fx.paymentGen.lastData.PriorPayments, 1)
	assert.True(t, fx.paymentGen.lastData.Invoice.DueAmount.IsZero())

	assert.Len(t, fx.paymentRepo.payments, 1, "la vista previa no registra el pago")
	stored, err := fx.invoiceRepo.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, dec("500").Equal(stored.PaidAmount), "los acumulados de la factura no cambian")
	assert.True(t, dec("350").Equal(stored.DueAmount))
}

func TestRecordPayment_MontoNoNumericoValeCero(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	resp, err := fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeCash,
		CurrentPaidAmount: "abc",
	}, false)
	require.NoError(t, err)

	assert.True(t, resp.Amount.IsZero())
	assert.True(t, dec("850").Equal(resp.InvoiceDue), "el saldo no cambia con un pago de cero")
}

func TestRecordPayment_MarcaEnviadaConSent(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	resp, err := fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeCash,
		CurrentPaidAmount: "0",
	}, true)
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusSent, resp.InvoiceStatus, "sent=true marca el borrador como enviado")
}

func TestGetPaymentState_HistoriaAutoritativa(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	_, err = fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeTransfer,
		Date:              "2026-02-01",
		CurrentPaidAmount: "500",
	}, false)
	require.NoError(t, err)

	state, err := fx.payments.GetPaymentState(context.Background(), "co-1", created.ID)
	require.NoError(t, err)

	assert.True(t, dec("850").Equal(state.TotalAmount))
	require.Len(t, state.PriorPayments, 1)
	assert.True(t, dec("500").Equal(state.PriorTotalPaid))
	assert.True(t, dec("350").Equal(state.DueAmount))
	assert.Equal(t, "Acme SAS", state.ClientInfo.Name)
	assert.Equal(t, "Oficina Ltda", state.ReceiverInfo.Name)
}

func TestUpdatePayment_RecalculaDesdeLaListaCompleta(t *testing.T) {
	fx := newBillingFixture()

	created, err := fx.invoices.CreateInvoice(context.Background(), "co-1", dto.SaveInvoiceRequest{
		ClientID: "cli-1",
		Items:    []dto.InvoiceItemPayload{{ServiceName: "Diseño", Quantity: "1", UnitPrice: "850"}},
	})
	require.NoError(t, err)

	first, err := fx.payments.RecordPayment(context.Background(), "co-1", dto.SavePaymentRequest{
		InvoiceID:         created.ID,
		TransactionType:   entity.TransactionTypeCash,
		CurrentPaidAmount: "500",
	}, false)
	require.NoError(t, err)

	resp, err := fx.payments.UpdatePayment(context.Background(), "co-1", first.ID, dto.SavePaymentRequest{
		CurrentPaidAmount: "300",
	}, false)
	require.NoError(t, err)

	assert.True(t, dec("300").Equal(resp.InvoicePaid), "el acumulado refleja el pago editado, no el original")
	assert.True(t, dec("550").Equal(resp.InvoiceDue))
	assert.Equal(t, entity.InvoiceStatusPartial, resp.InvoiceStatus)
}

func TestSplitRemoveIDs(t *testing.T) {
	assert.Equal(t, []string{"7"}, appbilling.SplitRemoveIDs("7,"))
	assert.Equal(t, []string{"7", "9"}, appbilling.SplitRemoveIDs("7,9,"))
	assert.Nil(t, appbilling.SplitRemoveIDs(""))
}
