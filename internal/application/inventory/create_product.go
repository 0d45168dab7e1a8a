package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/catalog"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// storeTimeout límite impuesto por el caller a cada operación contra el
// store; un vencimiento se reporta como error de almacenamiento.
const storeTimeout = 5 * time.Second

// CreateProductUseCase orquesta la creación atómica de un producto con su
// stock inicial opcional y su primera entrada de auditoría. Las validaciones
// puras (SKU, precio) corren antes de tocar el store; la unicidad del SKU la
// decide en última instancia el constraint del store dentro de la transacción.
type CreateProductUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateProductInput entrada del caso de uso. Price es obligatorio;
// ReorderThreshold, WarehouseID e InitialQuantity son opcionales.
// InitialQuantity sin WarehouseID es un error del caller.
type CreateProductInput struct {
	Name             string
	SKU              string
	Price            *decimal.Decimal
	ReorderThreshold *int
	WarehouseID      *int64
	InitialQuantity  *int64
}

// CreateProductWithStock valida, pre-chequea y ejecuta una única transacción
// con a lo sumo tres inserts: producto, fila de inventario e historial de
// stock inicial. Devuelve el ID del producto creado.
//
// Taxonomía de errores: ErrInvalidInput (datos del request), ErrNotFound
// (bodega inexistente), ErrConflict (SKU o par producto-bodega duplicado,
// incluida la carrera perdida contra un insert concurrente) y ErrStorage
// (cualquier otro fallo del store, siempre tras rollback completo).
func (uc *CreateProductUseCase) CreateProductWithStock(ctx context.Context, in CreateProductInput) (int64, error) {
	// Validaciones puras: cualquier fallo retorna antes de tocar el store.
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price == nil {
		return 0, domain.ErrInvalidInput
	}
	sku, err := catalog.NormalizeSKU(in.SKU)
	if err != nil {
		return 0, err
	}
	price, err := catalog.QuantizePrice(*in.Price)
	if err != nil {
		return 0, err
	}
	threshold := entity.DefaultReorderThreshold
	if in.ReorderThreshold != nil {
		if *in.ReorderThreshold < 0 {
			return 0, domain.ErrInvalidInput
		}
		threshold = *in.ReorderThreshold
	}
	var qty int64
	if in.InitialQuantity != nil {
		if in.WarehouseID == nil || *in.InitialQuantity < 0 {
			return 0, domain.ErrInvalidInput
		}
		qty = *in.InitialQuantity
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	// La bodega se verifica antes de abrir la transacción para evitar
	// rollbacks innecesarios; el FK dentro de la tx sigue siendo la
	// autoridad final.
	if in.WarehouseID != nil {
		wh, err := uc.warehouseRepo.GetByID(ctx, *in.WarehouseID)
		if err != nil {
			return 0, domain.Storage(err)
		}
		if wh == nil {
			return 0, domain.ErrNotFound
		}
	}

	// Pre-chequeo optimista de SKU: solo un fast path para no abrir
	// transacciones destinadas a fallar. La corrección la garantiza el
	// constraint único del store.
	existing, err := uc.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return 0, domain.Storage(err)
	}
	if existing != nil {
		return 0, domain.ErrConflict
	}

	now := time.Now().UTC()
	product := &entity.Product{
		Name:             name,
		SKU:              sku,
		Price:            price,
		ReorderThreshold: threshold,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
		histRepo repository.InventoryHistoryRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.WarehouseID == nil {
			return nil
		}
		inv := &entity.Inventory{
			ProductID:   product.ID,
			WarehouseID: *in.WarehouseID,
			Quantity:    qty,
			UpdatedAt:   now,
		}
		if err := invRepo.Create(ctx, inv); err != nil {
			return err
		}
		if qty == 0 {
			return nil
		}
		return histRepo.Append(ctx, &entity.InventoryHistory{
			InventoryID:  inv.ID,
			ChangeAmount: qty,
			Reason:       entity.ReasonInitialStock,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return 0, domain.Storage(err)
	}
	return product.ID, nil
}
