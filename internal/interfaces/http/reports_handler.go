package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/application/usecase"
)

// ReportsHandler expone los reportes de cartera del dashboard (protegido).
type ReportsHandler struct {
	uc *usecase.ReportsUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *usecase.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Receivables devuelve el resumen de cartera de la empresa del token.
// GET /api/reports/receivables
func (h *ReportsHandler) Receivables(c *fiber.Ctx) error {
	out, err := h.uc.GetReceivablesSummary(c.Context(), GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MonthlyRevenue devuelve la serie mensual facturado vs recaudado.
// GET /api/reports/monthly-revenue?months=6
func (h *ReportsHandler) MonthlyRevenue(c *fiber.Ctx) error {
	months := c.QueryInt("months", 6)
	out, err := h.uc.GetMonthlyRevenue(c.Context(), GetCompanyID(c), months)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
