package repository

import "github.com/tu-usuario/oficina-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company y sus
// datos de referencia (cuentas de cobro y firmantes).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByTaxID(taxID string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
	Update(company *entity.Company) error

	CreateBillingAddress(addr *entity.BillingAddress) error
	ListBillingAddresses(companyID string) ([]*entity.BillingAddress, error)
	GetBillingAddress(id string) (*entity.BillingAddress, error)

	CreateSignature(sig *entity.AuthoritySignature) error
	ListSignatures(companyID string) ([]*entity.AuthoritySignature, error)
	GetSignature(id string) (*entity.AuthoritySignature, error)
}
