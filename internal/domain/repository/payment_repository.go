package repository

import "github.com/tu-usuario/oficina-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para pagos.
// ListByInvoice devuelve la historia autoritativa de pagos previos en orden
// cronológico; la capa de aplicación nunca la muta localmente.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	Update(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
}
