package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	bySKU     map[string]*entity.Product
	nextID    int64
	createErr error
	created   []*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{bySKU: map[string]*entity.Product{}, nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, dup := f.bySKU[p.SKU]; dup {
		return domain.ErrConflict
	}
	p.ID = f.nextID
	f.nextID++
	f.bySKU[p.SKU] = p
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	for _, p := range f.bySKU {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}

func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

type fakeWarehouseRepo struct {
	byID map[int64]*entity.Warehouse
}

func newFakeWarehouseRepo(ids ...int64) *fakeWarehouseRepo {
	f := &fakeWarehouseRepo{byID: map[int64]*entity.Warehouse{}}
	for _, id := range ids {
		f.byID[id] = &entity.Warehouse{ID: id, CompanyID: 1, Name: "Bodega Central"}
	}
	return f
}

func (f *fakeWarehouseRepo) Create(_ context.Context, _ *entity.Warehouse) error { return nil }

func (f *fakeWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	return f.byID[id], nil
}

func (f *fakeWarehouseRepo) ListByCompany(_ context.Context, _ int64, _, _ int) ([]*entity.Warehouse, error) {
	return nil, nil
}

type fakeInventoryRepo struct {
	nextID    int64
	created   []*entity.Inventory
	createErr error
}

func (f *fakeInventoryRepo) Create(_ context.Context, inv *entity.Inventory) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	inv.ID = f.nextID
	f.created = append(f.created, inv)
	return nil
}

func (f *fakeInventoryRepo) GetByID(_ context.Context, _ int64) (*entity.Inventory, error) {
	return nil, nil
}

func (f *fakeInventoryRepo) GetForUpdate(_ context.Context, productID, warehouseID int64) (*entity.Inventory, error) {
	for _, inv := range f.created {
		if inv.ProductID == productID && inv.WarehouseID == warehouseID {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) UpdateQuantity(_ context.Context, id int64, quantity int64) error {
	for _, inv := range f.created {
		if inv.ID == id {
			inv.Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeHistoryRepo struct {
	appended  []*entity.InventoryHistory
	appendErr error
}

func (f *fakeHistoryRepo) Append(_ context.Context, h *entity.InventoryHistory) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	h.ID = int64(len(f.appended) + 1)
	f.appended = append(f.appended, h)
	return nil
}

// fakeTxRunner ejecuta el callback contra los fakes y simula rollback:
// si el callback falla, descarta todo lo escrito durante la "transacción".
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	invRepo     *fakeInventoryRepo
	histRepo    *fakeHistoryRepo
	runErr      error
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.InventoryRepository, repository.InventoryHistoryRepository) error) error {
	if f.runErr != nil {
		return f.runErr
	}
	prodBefore := len(f.productRepo.created)
	invBefore := len(f.invRepo.created)
	histBefore := len(f.histRepo.appended)
	if err := fn(f.productRepo, f.invRepo, f.histRepo); err != nil {
		for _, p := range f.productRepo.created[prodBefore:] {
			delete(f.productRepo.bySKU, p.SKU)
		}
		f.productRepo.created = f.productRepo.created[:prodBefore]
		f.invRepo.created = f.invRepo.created[:invBefore]
		f.histRepo.appended = f.histRepo.appended[:histBefore]
		return err
	}
	return nil
}

type createFixture struct {
	uc       *CreateProductUseCase
	products *fakeProductRepo
	inv      *fakeInventoryRepo
	hist     *fakeHistoryRepo
	tx       *fakeTxRunner
}

func newCreateFixture(warehouseIDs ...int64) *createFixture {
	products := newFakeProductRepo()
	inv := &fakeInventoryRepo{}
	hist := &fakeHistoryRepo{}
	tx := &fakeTxRunner{productRepo: products, invRepo: inv, histRepo: hist}
	return &createFixture{
		uc:       NewCreateProductUseCase(tx, products, newFakeWarehouseRepo(warehouseIDs...)),
		products: products,
		inv:      inv,
		hist:     hist,
		tx:       tx,
	}
}

func ptrDec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ptrInt64(v int64) *int64 { return &v }

func ptrInt(v int) *int { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_ConStockInicial(t *testing.T) {
	fx := newCreateFixture(7)
	id, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name:            "Tornillo M8",
		SKU:             "  abc-123 ",
		Price:           ptrDec("2.345"),
		WarehouseID:     ptrInt64(7),
		InitialQuantity: ptrInt64(50),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, fx.products.created, 1)
	p := fx.products.created[0]
	assert.Equal(t, "ABC-123", p.SKU, "el SKU se normaliza antes de persistir")
	assert.True(t, p.Price.Equal(decimal.RequireFromString("2.34")),
		"el precio se cuantiza con redondeo bancario a 2 decimales")
	assert.Equal(t, entity.DefaultReorderThreshold, p.ReorderThreshold)

	require.Len(t, fx.inv.created, 1)
	assert.Equal(t, int64(50), fx.inv.created[0].Quantity)
	assert.Equal(t, int64(7), fx.inv.created[0].WarehouseID)

	require.Len(t, fx.hist.appended, 1)
	h := fx.hist.appended[0]
	assert.Equal(t, int64(50), h.ChangeAmount)
	assert.Equal(t, entity.ReasonInitialStock, h.Reason)
	assert.Equal(t, fx.inv.created[0].ID, h.InventoryID)
}

func TestCreateProduct_SinStockInicial_NoTocaInventario(t *testing.T) {
	fx := newCreateFixture()
	id, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name:  "Tuerca M8",
		SKU:   "nut-01",
		Price: ptrDec("0.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Empty(t, fx.inv.created, "sin warehouse_id no se crea fila de inventario")
	assert.Empty(t, fx.hist.appended)
}

func TestCreateProduct_CantidadCero_SinHistorial(t *testing.T) {
	fx := newCreateFixture(7)
	_, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name:            "Arandela",
		SKU:             "wash-01",
		Price:           ptrDec("0.10"),
		WarehouseID:     ptrInt64(7),
		InitialQuantity: ptrInt64(0),
	})
	require.NoError(t, err)
	require.Len(t, fx.inv.created, 1, "cantidad cero sí crea la fila de inventario")
	assert.Equal(t, int64(0), fx.inv.created[0].Quantity)
	assert.Empty(t, fx.hist.appended, "cantidad cero no genera entrada de historial")
}

func TestCreateProduct_EntradasInvalidas(t *testing.T) {
	fx := newCreateFixture(7)
	cases := map[string]CreateProductInput{
		"nombre vacío":              {Name: "  ", SKU: "a", Price: ptrDec("1")},
		"sku vacío":                 {Name: "x", SKU: "   ", Price: ptrDec("1")},
		"precio nil":                {Name: "x", SKU: "a"},
		"precio negativo":           {Name: "x", SKU: "a", Price: ptrDec("-1")},
		"umbral negativo":           {Name: "x", SKU: "a", Price: ptrDec("1"), ReorderThreshold: ptrInt(-1)},
		"cantidad sin bodega":       {Name: "x", SKU: "a", Price: ptrDec("1"), InitialQuantity: ptrInt64(5)},
		"cantidad inicial negativa": {Name: "x", SKU: "a", Price: ptrDec("1"), WarehouseID: ptrInt64(7), InitialQuantity: ptrInt64(-5)},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fx.uc.CreateProductWithStock(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, fx.products.created, "ninguna entrada inválida debe tocar el store")
}

func TestCreateProduct_BodegaInexistente(t *testing.T) {
	fx := newCreateFixture()
	_, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name:            "Clavo",
		SKU:             "nail-01",
		Price:           ptrDec("1"),
		WarehouseID:     ptrInt64(99),
		InitialQuantity: ptrInt64(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, fx.products.created)
}

func TestCreateProduct_SKUDuplicado_FastPath(t *testing.T) {
	fx := newCreateFixture()
	_, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name: "Original", SKU: "dup-01", Price: ptrDec("1"),
	})
	require.NoError(t, err)

	// La identidad del SKU es la forma normalizada: "DUP-01" y " dup-01 "
	// son el mismo producto.
	_, err = fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name: "Clon", SKU: " dup-01 ", Price: ptrDec("2"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Len(t, fx.products.created, 1)
}

func TestCreateProduct_CarreraPerdida_EsConflict(t *testing.T) {
	// La carrera: el pre-chequeo no ve el SKU pero el insert dentro de la
	// tx pierde contra un insert concurrente. El constraint decide.
	fx := newCreateFixture()
	fx.products.createErr = domain.ErrConflict
	_, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name: "Carrera", SKU: "race-01", Price: ptrDec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateProduct_FalloDeHistorial_RevierteTodo(t *testing.T) {
	fx := newCreateFixture(7)
	fx.hist.appendErr = errors.New("disk full")
	_, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name:            "Perno",
		SKU:             "bolt-01",
		Price:           ptrDec("3"),
		WarehouseID:     ptrInt64(7),
		InitialQuantity: ptrInt64(20),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Empty(t, fx.products.created, "todo o nada: el producto no debe sobrevivir")
	assert.Empty(t, fx.inv.created)
	assert.Empty(t, fx.hist.appended)
}

func TestCreateProduct_FalloDelStore_EsStorage(t *testing.T) {
	fx := newCreateFixture()
	fx.tx.runErr = errors.New("connection reset")
	_, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name: "Cable", SKU: "wire-01", Price: ptrDec("9.99"),
	})
	assert.ErrorIs(t, err, domain.ErrStorage)
}

func TestCreateProduct_UmbralPersonalizado(t *testing.T) {
	fx := newCreateFixture()
	_, err := fx.uc.CreateProductWithStock(context.Background(), CreateProductInput{
		Name: "Filtro", SKU: "flt-01", Price: ptrDec("15"), ReorderThreshold: ptrInt(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, fx.products.created[0].ReorderThreshold)
	assert.WithinDuration(t, time.Now().UTC(), fx.products.created[0].CreatedAt, time.Minute)
}
