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

// SupplierTxRunner ejecuta la vinculación producto-proveedor en una
// transacción, con el repositorio atado a esa tx.
type SupplierTxRunner interface {
	RunSuppliers(ctx context.Context, fn func(repo repository.SupplierRepository) error) error
}

// SupplierUseCase casos de uso de proveedores y vínculos con productos.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
	txRunner    SupplierTxRunner
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository, txRunner SupplierTxRunner) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo, txRunner: txRunner}
}

// Create registra un proveedor. ContactEmail es opcional.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{Name: name, ContactEmail: in.ContactEmail, CreatedAt: time.Now().UTC()}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, domain.Storage(err)
	}
	return dto.ToSupplierResponse(supplier), nil
}

// List devuelve proveedores con paginación.
func (uc *SupplierUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Storage(err)
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *dto.ToSupplierResponse(s))
	}
	return out, nil
}

// LinkToProduct vincula un proveedor a un producto. Si el vínculo llega con
// is_primary = true, cualquier primario anterior del producto se degrada
// dentro de la misma transacción: el esquema no tiene constraint parcial,
// así que "a lo sumo un primario por producto" se garantiza aquí.
func (uc *SupplierUseCase) LinkToProduct(ctx context.Context, productID int64, in dto.LinkSupplierRequest) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return domain.Storage(err)
	}
	if product == nil {
		return domain.ErrNotFound
	}
	supplier, err := uc.repo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return domain.Storage(err)
	}
	if supplier == nil {
		return domain.ErrNotFound
	}

	err = uc.txRunner.RunSuppliers(ctx, func(repo repository.SupplierRepository) error {
		if in.IsPrimary {
			if err := repo.DemotePrimary(ctx, productID); err != nil {
				return err
			}
		}
		return repo.UpsertLink(ctx, &entity.ProductSupplier{
			ProductID:  productID,
			SupplierID: in.SupplierID,
			IsPrimary:  in.IsPrimary,
		})
	})
	return domain.Storage(err)
}
