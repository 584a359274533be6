package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oficina-api/internal/application/billing"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
)

// PaymentHandler maneja el registro y la consulta de pagos (protegido).
// El query param ?sent=true replica la acción "guardar y marcar enviada" del
// formulario de pago.
type PaymentHandler struct {
	uc    *billing.PaymentUseCase
	pdfUC *billing.PDFUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase, pdfUC *billing.PDFUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc, pdfUC: pdfUC}
}

// State devuelve el estado de reconciliación de la factura: total
// autoritativo, pagos previos y saldo. Es la lectura del formulario de pago.
// GET /api/invoices/:id/payments
func (h *PaymentHandler) State(c *fiber.Ctx) error {
	state, err := h.uc.GetPaymentState(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(state)
}

// Create registra un pago nuevo contra la factura del body.
// POST /api/payments?sent=true
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.SavePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	markSent := c.Query("sent") == "true"
	payment, err := h.uc.RecordPayment(c.Context(), GetCompanyID(c), in, markSent)
	if err != nil {
		return paymentError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// Update edita un pago existente y reconcilia la factura.
// PUT /api/payments/:id?sent=true
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.SavePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	markSent := c.Query("sent") == "true"
	payment, err := h.uc.UpdatePayment(c.Context(), GetCompanyID(c), c.Params("id"), in, markSent)
	if err != nil {
		return paymentError(c, err)
	}
	return c.JSON(payment)
}

// Preview renderiza el recibo del pago en edición sin registrarlo (acción
// "vista previa" del formulario de pago).
// POST /api/payments/preview
func (h *PaymentHandler) Preview(c *fiber.Ctx) error {
	var in dto.SavePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, err := h.pdfUC.PreviewPaymentPDF(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return paymentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-pago.pdf"`)
	return c.Send(pdfBytes)
}

// ReceiptPDF renderiza el recibo de un pago registrado.
// GET /api/payments/:id/pdf
func (h *PaymentHandler) ReceiptPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.PaymentReceiptPDF(c.Context(), GetCompanyID(c), c.Params("id"))
	if err != nil {
		return paymentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-pago.pdf"`)
	return c.Send(pdfBytes)
}

func paymentError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invoice_id es requerido"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura o pago no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case domain.ErrInvoiceNotPayable:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_PAYABLE", Message: "la factura no admite pagos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
