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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository: empresas, cuentas de cobro
// y firmantes autorizados.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, tax_id, address, phone, email, website, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.Address, company.Phone,
		company.Email, company.Website, company.Status, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, website, status, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email, &c.Website, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByTaxID obtiene una empresa por identificación tributaria.
func (r *CompanyRepo) GetByTaxID(taxID string) (*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, website, status, created_at, updated_at
		FROM companies WHERE tax_id = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, taxID).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email, &c.Website, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by tax_id: %w", err)
	}
	return &c, nil
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, name, tax_id, address, phone, email, website, status, created_at, updated_at
		FROM companies ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.TaxID, &c.Address, &c.Phone, &c.Email, &c.Website, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, tax_id = $3, address = $4, phone = $5, email = $6, website = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.TaxID, company.Address, company.Phone,
		company.Email, company.Website, company.Status, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// CreateBillingAddress persiste una cuenta de cobro de la empresa.
func (r *CompanyRepo) CreateBillingAddress(addr *entity.BillingAddress) error {
	query := `
		INSERT INTO billing_addresses (id, company_id, label, account_name, account_number, bank_name, branch_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		addr.ID, addr.CompanyID, addr.Label, addr.AccountName, addr.AccountNumber,
		addr.BankName, addr.BranchName, addr.CreatedAt, addr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert billing address: %w", err)
	}
	return nil
}

// ListBillingAddresses lista las cuentas de cobro de la empresa.
func (r *CompanyRepo) ListBillingAddresses(companyID string) ([]*entity.BillingAddress, error) {
	query := `
		SELECT id, company_id, label, account_name, account_number, bank_name, branch_name, created_at, updated_at
		FROM billing_addresses WHERE company_id = $1 ORDER BY label`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list billing addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.BillingAddress
	for rows.Next() {
		var a entity.BillingAddress
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.Label, &a.AccountName, &a.AccountNumber, &a.BankName, &a.BranchName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan billing address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// GetBillingAddress obtiene una cuenta de cobro por ID.
func (r *CompanyRepo) GetBillingAddress(id string) (*entity.BillingAddress, error) {
	query := `
		SELECT id, company_id, label, account_name, account_number, bank_name, branch_name, created_at, updated_at
		FROM billing_addresses WHERE id = $1`
	var a entity.BillingAddress
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.CompanyID, &a.Label, &a.AccountName, &a.AccountNumber, &a.BankName, &a.BranchName, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get billing address: %w", err)
	}
	return &a, nil
}

// CreateSignature persiste un firmante autorizado.
func (r *CompanyRepo) CreateSignature(sig *entity.AuthoritySignature) error {
	query := `
		INSERT INTO authority_signatures (id, company_id, name, title, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sig.ID, sig.CompanyID, sig.Name, sig.Title, sig.ImagePath, sig.CreatedAt, sig.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert signature: %w", err)
	}
	return nil
}

// ListSignatures lista los firmantes autorizados de la empresa.
func (r *CompanyRepo) ListSignatures(companyID string) ([]*entity.AuthoritySignature, error) {
	query := `
		SELECT id, company_id, name, title, image_path, created_at, updated_at
		FROM authority_signatures WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuthoritySignature
	for rows.Next() {
		var s entity.AuthoritySignature
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Title, &s.ImagePath, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan signature: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetSignature obtiene un firmante autorizado por ID.
func (r *CompanyRepo) GetSignature(id string) (*entity.AuthoritySignature, error) {
	query := `
		SELECT id, company_id, name, title, image_path, created_at, updated_at
		FROM authority_signatures WHERE id = $1`
	var s entity.AuthoritySignature
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Title, &s.ImagePath, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get signature: %w", err)
	}
	return &s, nil
}
