package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// InventoryRepository puerto de persistencia para filas de inventario.
// Create asigna el ID generado en inventory.ID y devuelve domain.ErrConflict
// si ya existe una fila para el par (product_id, warehouse_id).
// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de la transacción
// del caller; devuelve (nil, nil) si no existe.
type InventoryRepository interface {
	Create(ctx context.Context, inventory *entity.Inventory) error
	GetByID(ctx context.Context, id int64) (*entity.Inventory, error)
	GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int64) error
}

// InventoryHistoryRepository puerto del registro de auditoría append-only.
// Solo inserta: las filas de historial nunca se modifican ni se borran.
type InventoryHistoryRepository interface {
	Append(ctx context.Context, hist *entity.InventoryHistory) error
}
