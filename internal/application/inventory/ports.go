package inventory

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera transaccional explícita del
// motor de inventario: todos los inserts de fn se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error) error
}
