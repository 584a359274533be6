package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas y sus datos de
// referencia de facturación (cuentas de cobro y firmantes).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa. Genera ID y estado inicial. Devuelve
// domain.ErrDuplicate si la identificación tributaria ya existe.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := uc.repo.GetByTaxID(in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Website:   in.Website,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// CreateBillingAddress registra una cuenta de cobro de la empresa.
func (uc *CompanyUseCase) CreateBillingAddress(companyID string, in dto.CreateBillingAddressRequest) (*dto.BillingAddressResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	addr := &entity.BillingAddress{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		Label:         in.Label,
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
		BankName:      in.BankName,
		BranchName:    in.BranchName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.CreateBillingAddress(addr); err != nil {
		return nil, err
	}
	return toBillingAddressResponse(addr), nil
}

// ListBillingAddresses lista las cuentas de cobro de la empresa (pueblan el
// selector del formulario de factura).
func (uc *CompanyUseCase) ListBillingAddresses(companyID string) ([]dto.BillingAddressResponse, error) {
	list, err := uc.repo.ListBillingAddresses(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BillingAddressResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toBillingAddressResponse(a))
	}
	return items, nil
}

// CreateSignature registra un firmante autorizado de la empresa.
func (uc *CompanyUseCase) CreateSignature(companyID string, in dto.CreateSignatureRequest) (*dto.SignatureResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	sig := &entity.AuthoritySignature{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Title:     in.Title,
		ImagePath: in.ImagePath,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateSignature(sig); err != nil {
		return nil, err
	}
	return toSignatureResponse(sig), nil
}

// ListSignatures lista los firmantes autorizados de la empresa.
func (uc *CompanyUseCase) ListSignatures(companyID string) ([]dto.SignatureResponse, error) {
	list, err := uc.repo.ListSignatures(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SignatureResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSignatureResponse(s))
	}
	return items, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Website:   c.Website,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toBillingAddressResponse(a *entity.BillingAddress) *dto.BillingAddressResponse {
	return &dto.BillingAddressResponse{
		ID:            a.ID,
		CompanyID:     a.CompanyID,
		Label:         a.Label,
		AccountName:   a.AccountName,
		AccountNumber: a.AccountNumber,
		BankName:      a.BankName,
		BranchName:    a.BranchName,
	}
}

func toSignatureResponse(s *entity.AuthoritySignature) *dto.SignatureResponse {
	return &dto.SignatureResponse{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Title:     s.Title,
		ImagePath: s.ImagePath,
	}
}
