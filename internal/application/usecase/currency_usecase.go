package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

// CurrencyUseCase administra las monedas configuradas para facturación.
type CurrencyUseCase struct {
	repo repository.CurrencyRepository
}

// NewCurrencyUseCase construye el caso de uso.
func NewCurrencyUseCase(repo repository.CurrencyRepository) *CurrencyUseCase {
	return &CurrencyUseCase{repo: repo}
}

// Create registra una moneda. El código se normaliza a mayúsculas; devuelve
// domain.ErrDuplicate si ya existe.
func (uc *CurrencyUseCase) Create(in dto.CreateCurrencyRequest) (*dto.CurrencyResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if len(code) != 3 || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	currency := &entity.Currency{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      in.Name,
		Symbol:    in.Symbol,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(currency); err != nil {
		return nil, err
	}
	return toCurrencyResponse(currency), nil
}

// List devuelve todas las monedas configuradas.
func (uc *CurrencyUseCase) List() ([]dto.CurrencyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CurrencyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCurrencyResponse(c))
	}
	return items, nil
}

func toCurrencyResponse(c *entity.Currency) *dto.CurrencyResponse {
	return &dto.CurrencyResponse{
		ID:     c.ID,
		Code:   c.Code,
		Name:   c.Name,
		Symbol: c.Symbol,
	}
}
