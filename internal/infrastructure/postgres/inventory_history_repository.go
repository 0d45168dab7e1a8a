package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.InventoryHistoryRepository = (*InventoryHistoryRepo)(nil)

// InventoryHistoryRepo adaptador append-only del registro de auditoría.
type InventoryHistoryRepo struct {
	q Querier
}

// NewInventoryHistoryRepository construye el adaptador de historial.
// Pasar pool o tx (Querier).
func NewInventoryHistoryRepository(q Querier) *InventoryHistoryRepo {
	return &InventoryHistoryRepo{q: q}
}

// Append inserta una entrada de historial y asigna el ID generado.
// TransactionID vacío se persiste como NULL.
func (r *InventoryHistoryRepo) Append(ctx context.Context, hist *entity.InventoryHistory) error {
	query := `
		INSERT INTO inventory_history (inventory_id, change_amount, reason, transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var txID *string
	if hist.TransactionID != "" {
		txID = &hist.TransactionID
	}
	err := r.q.QueryRow(ctx, query,
		hist.InventoryID, hist.ChangeAmount, hist.Reason, txID, hist.CreatedAt,
	).Scan(&hist.ID)
	if err != nil {
		return fmt.Errorf("insert inventory history: %w", err)
	}
	return nil
}
