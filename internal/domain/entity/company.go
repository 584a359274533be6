package entity

import "time"

// Company representa la empresa emisora (identidad del remitente en facturas).
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT o identificación tributaria
	Address   string
	Phone     string
	Email     string
	Website   string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BillingAddress es una cuenta de cobro de la empresa: los datos bancarios
// que la factura referencia para recibir el pago.
type BillingAddress struct {
	ID            string
	CompanyID     string
	Label         string // nombre visible en el selector del formulario
	AccountName   string
	AccountNumber string
	BankName      string
	BranchName    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AuthoritySignature es el firmante autorizado que aparece en la factura.
type AuthoritySignature struct {
	ID        string
	CompanyID string
	Name      string
	Title     string
	ImagePath string // ruta/URL de la imagen de la firma (opcional)
	CreatedAt time.Time
	UpdatedAt time.Time
}
