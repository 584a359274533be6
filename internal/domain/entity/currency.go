package entity

import "time"

// Currency es una moneda configurada para facturación.
type Currency struct {
	ID        string
	Code      string // ISO 4217: COP, USD, EUR
	Name      string
	Symbol    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
