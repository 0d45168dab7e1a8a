package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia para proveedores y sus vínculos
// con productos. UpsertLink crea o actualiza el vínculo producto-proveedor;
// DemotePrimary baja a false cualquier vínculo primario existente del
// producto (se usa dentro de la transacción de vinculación para garantizar
// a lo sumo un primario por producto).
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error)
	UpsertLink(ctx context.Context, link *entity.ProductSupplier) error
	DemotePrimary(ctx context.Context, productID int64) error
}
