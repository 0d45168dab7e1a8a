package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// RegisterMovementUseCase registra cambios de stock posteriores a la
// creación: ventas, reposiciones y ajustes. Preserva la misma disciplina que
// la creación inicial: historial append-only más mutación de cantidad, en
// una sola transacción con bloqueo de fila (SELECT FOR UPDATE).
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MovementInput entrada de un movimiento. ChangeAmount ≠ 0: positivo agrega
// stock, negativo lo resta (una venta). La bodega debe pertenecer a la
// empresa del caller.
type MovementInput struct {
	CompanyID    int64
	ProductID    int64
	WarehouseID  int64
	ChangeAmount int64
	Reason       string
}

// MovementResult cantidad resultante y el ID de correlación del lote.
type MovementResult struct {
	InventoryID   int64
	Quantity      int64
	TransactionID string
}

// RegisterMovement bloquea la fila de inventario, aplica el delta y agrega
// la entrada de historial, todo dentro de una transacción. La cantidad puede
// quedar en negativo: decisión deliberada del modelo, la ruta de escritura no
// lo valida.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if in.ChangeAmount == 0 || strings.TrimSpace(in.Reason) == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	wh, err := uc.warehouseRepo.GetByID(ctx, in.WarehouseID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	if wh.CompanyID != in.CompanyID {
		return nil, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	txID := uuid.New().String()
	var out MovementResult

	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error {
		// Bloquea la fila para serializar movimientos concurrentes sobre
		// el mismo par producto-bodega.
		inv, err := invRepo.GetForUpdate(ctx, in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}
		if inv == nil {
			// Primer movimiento sin stock inicial: se crea la fila en cero
			// y se aplica el delta sobre ella.
			inv = &entity.Inventory{
				ProductID:   in.ProductID,
				WarehouseID: in.WarehouseID,
				Quantity:    0,
				UpdatedAt:   now,
			}
			if err := invRepo.Create(ctx, inv); err != nil {
				return err
			}
		}
		newQty := inv.Quantity + in.ChangeAmount
		if err := invRepo.UpdateQuantity(ctx, inv.ID, newQty); err != nil {
			return err
		}
		if err := histRepo.Append(ctx, &entity.InventoryHistory{
			InventoryID:   inv.ID,
			ChangeAmount:  in.ChangeAmount,
			Reason:        strings.TrimSpace(in.Reason),
			TransactionID: txID,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		out = MovementResult{InventoryID: inv.ID, Quantity: newQty, TransactionID: txID}
		return nil
	})
	if err != nil {
		return nil, domain.Storage(err)
	}
	return &out, nil
}
