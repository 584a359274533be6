package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/oficina-api/internal/application/dto"
	"github.com/tu-usuario/oficina-api/internal/domain"
	"github.com/tu-usuario/oficina-api/internal/domain/entity"
	"github.com/tu-usuario/oficina-api/internal/domain/repository"
)

// ServiceUseCase administra el catálogo de servicios facturables. El catálogo
// puebla los selectores de línea del formulario de factura; la primera entrada
// es el servicio por defecto de una fila nueva.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create agrega un servicio al catálogo. Tarifas negativas se clampean a cero.
func (uc *ServiceUseCase) Create(companyID string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	rate := in.DefaultRate
	if rate.LessThan(decimal.Zero) {
		rate = decimal.Zero
	}
	now := time.Now()
	service := &entity.Service{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Description: in.Description,
		DefaultRate: rate,
		Unit:        in.Unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID obtiene un servicio verificando que pertenezca a la empresa.
func (uc *ServiceUseCase) GetByID(companyID, id string) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if service.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toServiceResponse(service), nil
}

// List lista el catálogo de la empresa con paginación.
func (uc *ServiceUseCase) List(companyID string, limit, offset int) (*dto.ServiceListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServiceResponse(s))
	}
	return &dto.ServiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update edita un servicio del catálogo.
func (uc *ServiceUseCase) Update(companyID, id string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, domain.ErrNotFound
	}
	if service.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Name != "" {
		service.Name = in.Name
	}
	service.Description = in.Description
	if !in.DefaultRate.LessThan(decimal.Zero) {
		service.DefaultRate = in.DefaultRate
	}
	service.Unit = in.Unit
	service.UpdatedAt = time.Now()
	if err := uc.repo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// Delete elimina un servicio del catálogo. Las líneas de factura ya guardadas
// conservan el nombre copiado; borrarlo del catálogo no las afecta.
func (uc *ServiceUseCase) Delete(companyID, id string) error {
	service, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if service.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	if s == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Name:        s.Name,
		Description: s.Description,
		DefaultRate: s.DefaultRate,
		Unit:        s.Unit,
	}
}
