package http

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oficina-api/internal/application/billing"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP de facturación (protegido).
// El formulario envía multipart/form-data: campos planos + "services" (array
// JSON de líneas) + "remove_service" (IDs removidos unidos por coma).
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// parseInvoiceForm arma el request desde los campos del formulario. Acepta
// también JSON plano (c.BodyParser) para clientes de API directos.
func parseInvoiceForm(c *fiber.Ctx) (dto.SaveInvoiceRequest, error) {
	var in dto.SaveInvoiceRequest
	if c.Is("json") {
		if err := c.BodyParser(&in); err != nil {
			return in, err
		}
		return in, nil
	}
	in.ClientID = c.FormValue("client_id")
	in.BillingAddressID = c.FormValue("billing_address_id")
	in.AuthorityID = c.FormValue("authority_id")
	in.CurrencyID = c.FormValue("currency_id")
	in.Number = c.FormValue("number")
	in.IssueDate = c.FormValue("issue_date")
	in.Notes = c.FormValue("notes")
	in.RemoveItemIDs = c.FormValue("remove_service")
	if raw := c.FormValue("payment_due_days"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil {
			in.PaymentDueDays = &days
		}
	}
	if raw := c.FormValue("services"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &in.Items); err != nil {
			return in, err
		}
	}
	return in, nil
}

// Create crea una factura desde el formulario. Con ?sent=true se guarda y
// queda marcada como enviada en la misma operación.
// POST /api/invoices?sent=true
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	in, err := parseInvoiceForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.MarkSent = c.Query("sent") == "true"
	invoice, err := h.uc.CreateInvoice(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// Update edita una factura; aplica los borrados pendientes de remove_service.
// PUT /api/invoices/:id?sent=true
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	in, err := parseInvoiceForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.MarkSent = c.Query("sent") == "true"
	invoice, err := h.uc.UpdateInvoice(c.Context(), GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(invoice)
}

// GetByID obtiene el detalle completo de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetInvoice(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(invoice)
}

// List lista cabeceras de factura de la empresa del token.
// GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListInvoices(c.Context(), GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Preview renderiza el estado actual del formulario a PDF sin persistir nada.
// POST /api/invoices/preview
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	in, err := parseInvoiceForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, err := h.pdfUC.PreviewInvoicePDF(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return invoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-preview.pdf"`)
	return c.Send(pdfBytes)
}

// PDF renderiza una factura guardada.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.InvoicePDF(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return invoiceError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura.pdf"`)
	return c.Send(pdfBytes)
}

func invoiceError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id y al menos una línea son requeridos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura o cliente no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
