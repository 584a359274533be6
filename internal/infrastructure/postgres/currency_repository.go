package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/oficina-api/internal/domain"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)

// CurrencyRepo implementación de CurrencyRepository.
type CurrencyRepo struct {
	q Querier
}

// NewCurrencyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

// Create persiste una moneda configurada.
func (r *CurrencyRepo) Create(currency *entity.Currency) error {
	query := `
		INSERT INTO currencies (id, code, name, symbol, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		currency.ID, currency.Code, currency.Name, currency.Symbol, currency.CreatedAt, currency.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert currency: %w", err)
	}
	return nil
}

// GetByID obtiene una moneda por ID.
func (r *CurrencyRepo) GetByID(id string) (*entity.Currency, error) {
	query := `SELECT id, code, name, symbol, created_at, updated_at FROM currencies WHERE id = $1`
	var c entity.Currency
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Code, &c.Name, &c.Symbol, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return &c, nil
}

// GetByCode obtiene una moneda por código ISO.
func (r *CurrencyRepo) GetByCode(code string) (*entity.Currency, error) {
	query := `SELECT id, code, name, symbol, created_at, updated_at FROM currencies WHERE code = $1`
	var c entity.Currency
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&c.ID, &c.Code, &c.Name, &c.Symbol, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency by code: %w", err)
	}
	return &c, nil
}

// List devuelve todas las monedas configuradas.
func (r *CurrencyRepo) List() ([]*entity.Currency, error) {
	query := `SELECT id, code, name, symbol, created_at, updated_at FROM currencies ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Currency
	for rows.Next() {
		var c entity.Currency
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
