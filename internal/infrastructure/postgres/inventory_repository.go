package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre
// PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para
// inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta una fila de inventario y asigna el ID generado. El par
// (product_id, warehouse_id) es único: una violación se traduce a
// domain.ErrConflict; una FK rota (producto o bodega inexistente) a
// domain.ErrNotFound.
func (r *InventoryRepo) Create(ctx context.Context, inventory *entity.Inventory) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		inventory.ProductID, inventory.WarehouseID, inventory.Quantity, inventory.UpdatedAt,
	).Scan(&inventory.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByID obtiene una fila de inventario por ID; (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventory WHERE id = $1`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// GetForUpdate bloquea la fila de inventario del par (producto, bodega)
// dentro de la transacción del caller; (nil, nil) si no existe.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM inventory
		WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, query, productID, warehouseID).Scan(
		&inv.ID, &inv.ProductID, &inv.WarehouseID, &inv.Quantity, &inv.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity fija la cantidad absoluta de la fila. Se permite cantidad
// negativa: el historial registra el movimiento que la produjo.
func (r *InventoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int64) error {
	query := `UPDATE inventory SET quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, quantity)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
