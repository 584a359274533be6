package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service es una entrada del catálogo de servicios/productos facturables.
// El nombre se selecciona libremente en las líneas de factura; no es una
// foreign key reforzada del lado del formulario.
type Service struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	DefaultRate decimal.Decimal // tarifa sugerida al seleccionar el servicio
	Unit        string          // hora, día, unidad
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
