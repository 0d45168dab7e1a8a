package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// CompanyUseCase casos de uso de empresas (tenants).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create registra una nueva empresa.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	company := &entity.Company{Name: name, CreatedAt: time.Now().UTC()}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, domain.Storage(err)
	}
	return dto.ToCompanyResponse(company), nil
}

// GetByID obtiene una empresa; nil si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	return dto.ToCompanyResponse(company), nil
}

// List devuelve empresas con paginación.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.CompanyResponse, error) {
	page.DefaultPage()
	companies, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Storage(err)
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, *dto.ToCompanyResponse(c))
	}
	return out, nil
}
