package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oficina-api/internal/application/auth"
	"github.com/tu-usuario/oficina-api/internal/application/billing"
	"github.com/tu-usuario/oficina-api/internal/application/usecase"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	ClientUC   *usecase.ClientUseCase
	ServiceUC  *usecase.ServiceUseCase
	CurrencyUC *usecase.CurrencyUseCase
	ReportsUC  *usecase.ReportsUseCase
	InvoiceUC  *billing.InvoiceUseCase
	PaymentUC  *billing.PaymentUseCase
	PDFUC      *billing.PDFUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (registro inicial; la lectura queda pública para el onboarding)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Datos de referencia de la empresa del token
	company := protected.Group("/company")
	company.Post("/billing-addresses", companyHandler.CreateBillingAddress)
	company.Get("/billing-addresses", companyHandler.ListBillingAddresses)
	company.Post("/signatures", companyHandler.CreateSignature)
	company.Get("/signatures", companyHandler.ListSignatures)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleContador), clientHandler.Delete)

	// Catálogo de servicios y monedas (protegido)
	catalogHandler := NewCatalogHandler(deps.ServiceUC, deps.CurrencyUC)
	services := protected.Group("/services")
	services.Post("/", catalogHandler.CreateService)
	services.Get("/", catalogHandler.ListServices)
	services.Put("/:id", catalogHandler.UpdateService)
	services.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleContador), catalogHandler.DeleteService)
	currencies := protected.Group("/currencies")
	currencies.Post("/", RequireRole(entity.RoleAdmin), catalogHandler.CreateCurrency)
	currencies.Get("/", catalogHandler.ListCurrencies)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
	invoices.Get("/:id/payments", paymentHandler.State)

	// Payments (protegido)
	payments := protected.Group("/payments")
	payments.Post("/", paymentHandler.Create)
	payments.Post("/preview", paymentHandler.Preview)
	payments.Put("/:id", paymentHandler.Update)
	payments.Get("/:id/pdf", paymentHandler.ReceiptPDF)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reports.Get("/receivables", reportsHandler.Receivables)
	reports.Get("/monthly-revenue", reportsHandler.MonthlyRevenue)
}
