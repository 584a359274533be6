package repository

import "github.com/tu-usuario/oficina-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas y sus líneas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	Update(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error)

	CreateItem(item *entity.InvoiceItem) error
	UpdateItem(item *entity.InvoiceItem) error
	DeleteItems(invoiceID string, itemIDs []string) error
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
}
