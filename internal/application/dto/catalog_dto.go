package dto

import "github.com/shopspring/decimal"

// CreateServiceRequest entrada del catálogo de servicios.
type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	DefaultRate decimal.Decimal `json:"default_rate"`
	Unit        string          `json:"unit"`
}

// ServiceResponse servicio del catálogo en respuestas (puebla los
// selectores de línea del formulario de factura).
type ServiceResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	DefaultRate decimal.Decimal `json:"default_rate"`
	Unit        string          `json:"unit,omitempty"`
}

// ServiceListResponse listado paginado del catálogo.
type ServiceListResponse struct {
	Items []ServiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateCurrencyRequest moneda de configuración.
type CreateCurrencyRequest struct {
	Code   string `json:"code" validate:"required,len=3"`
	Name   string `json:"name" validate:"required"`
	Symbol string `json:"symbol"`
}

// CurrencyResponse moneda en respuestas.
type CurrencyResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
