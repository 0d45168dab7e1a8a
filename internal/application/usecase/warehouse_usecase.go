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

// WarehouseUseCase casos de uso de bodegas. Una bodega nace ligada a la
// empresa del caller y el vínculo no cambia después.
type WarehouseUseCase struct {
	repo        repository.WarehouseRepository
	companyRepo repository.CompanyRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository, companyRepo repository.CompanyRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, companyRepo: companyRepo}
}

// Create registra una bodega para la empresa indicada.
func (uc *WarehouseUseCase) Create(ctx context.Context, companyID int64, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	warehouse := &entity.Warehouse{CompanyID: companyID, Name: name, CreatedAt: time.Now().UTC()}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, domain.Storage(err)
	}
	return dto.ToWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega; nil si no existe o pertenece a otra empresa.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, companyID, id int64) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if warehouse == nil || warehouse.CompanyID != companyID {
		return nil, nil
	}
	return dto.ToWarehouseResponse(warehouse), nil
}

// ListByCompany lista las bodegas de la empresa.
func (uc *WarehouseUseCase) ListByCompany(ctx context.Context, companyID int64, page dto.PageRequest) ([]dto.WarehouseResponse, error) {
	page.DefaultPage()
	warehouses, err := uc.repo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Storage(err)
	}
	out := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, *dto.ToWarehouseResponse(w))
	}
	return out, nil
}
