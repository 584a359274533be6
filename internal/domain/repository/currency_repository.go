package repository

import "github.com/tu-usuario/oficina-api/internal/domain/entity"

// CurrencyRepository define el puerto de persistencia para monedas configuradas.
type CurrencyRepository interface {
	Create(currency *entity.Currency) error
	GetByID(id string) (*entity.Currency, error)
	GetByCode(code string) (*entity.Currency, error)
	List() ([]*entity.Currency, error)
}
