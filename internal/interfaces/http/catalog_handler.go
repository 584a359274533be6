package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/application/usecase"
	"github.com/tu-usuario/oficina-api/internal/domain"
)

// CatalogHandler maneja el catálogo de servicios y las monedas configuradas
// (los datos de referencia que pueblan los selectores del formulario).
type CatalogHandler struct {
	serviceUC  *usecase.ServiceUseCase
	currencyUC *usecase.CurrencyUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(serviceUC *usecase.ServiceUseCase, currencyUC *usecase.CurrencyUseCase) *CatalogHandler {
	return &CatalogHandler{serviceUC: serviceUC, currencyUC: currencyUC}
}

// CreateService agrega un servicio al catálogo de la empresa del token.
// POST /api/services
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.serviceUC.Create(GetCompanyID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un servicio con ese nombre"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// ListServices lista el catálogo de la empresa del token.
// GET /api/services
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.serviceUC.List(GetCompanyID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateService edita un servicio del catálogo.
// PUT /api/services/:id
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	var in dto.CreateServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	service, err := h.serviceUC.Update(GetCompanyID(c), c.Params("id"), in)
	if err != nil {
		return catalogError(c, err, "servicio no encontrado")
	}
	return c.JSON(service)
}

// DeleteService elimina un servicio del catálogo.
// DELETE /api/services/:id
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.serviceUC.Delete(GetCompanyID(c), c.Params("id")); err != nil {
		return catalogError(c, err, "servicio no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCurrency registra una moneda de configuración.
// POST /api/currencies
func (h *CatalogHandler) CreateCurrency(c *fiber.Ctx) error {
	var in dto.CreateCurrencyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	currency, err := h.currencyUC.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code (3 letras) y name son requeridos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la moneda " + strings.ToUpper(in.Code) + " ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(currency)
}

// ListCurrencies lista las monedas configuradas.
// GET /api/currencies
func (h *CatalogHandler) ListCurrencies(c *fiber.Ctx) error {
	out, err := h.currencyUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func catalogError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
