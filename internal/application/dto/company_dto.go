package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	TaxID   string `json:"tax_id" validate:"required,min=1,max=20"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
	Website string `json:"website"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Website   string    `json:"website"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateBillingAddressRequest cuenta de cobro de la empresa.
type CreateBillingAddressRequest struct {
	Label         string `json:"label" validate:"required"`
	AccountName   string `json:"account_name" validate:"required"`
	AccountNumber string `json:"account_number" validate:"required"`
	BankName      string `json:"bank_name"`
	BranchName    string `json:"branch_name"`
}

// BillingAddressResponse cuenta de cobro en respuestas.
type BillingAddressResponse struct {
	ID            string `json:"id"`
	CompanyID     string `json:"company_id"`
	Label         string `json:"label"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	BranchName    string `json:"branch_name"`
}

// CreateSignatureRequest firmante autorizado.
type CreateSignatureRequest struct {
	Name      string `json:"name" validate:"required"`
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
}

// SignatureResponse firmante autorizado en respuestas.
type SignatureResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	ImagePath string `json:"image_path"`
}
