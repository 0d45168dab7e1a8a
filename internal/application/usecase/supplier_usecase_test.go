package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

type memSupplierRepo struct {
	byID   map[int64]*entity.Supplier
	links  map[[2]int64]*entity.ProductSupplier
	nextID int64
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{
		byID:  map[int64]*entity.Supplier{},
		links: map[[2]int64]*entity.ProductSupplier{},
	}
}

func (m *memSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	m.nextID++
	s.ID = m.nextID
	m.byID[s.ID] = s
	return nil
}

func (m *memSupplierRepo) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return m.byID[id], nil
}

func (m *memSupplierRepo) List(_ context.Context, _, _ int) ([]*entity.Supplier, error) {
	return nil, nil
}

func (m *memSupplierRepo) UpsertLink(_ context.Context, link *entity.ProductSupplier) error {
	cp := *link
	m.links[[2]int64{link.ProductID, link.SupplierID}] = &cp
	return nil
}

func (m *memSupplierRepo) DemotePrimary(_ context.Context, productID int64) error {
	for key, link := range m.links {
		if key[0] == productID {
			link.IsPrimary = false
		}
	}
	return nil
}

func (m *memSupplierRepo) primaries(productID int64) int {
	n := 0
	for key, link := range m.links {
		if key[0] == productID && link.IsPrimary {
			n++
		}
	}
	return n
}

type memProductRepo struct {
	byID map[int64]*entity.Product
}

func (m *memProductRepo) Create(_ context.Context, _ *entity.Product) error { return nil }

func (m *memProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return m.byID[id], nil
}

func (m *memProductRepo) GetBySKU(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (m *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

type passthroughTx struct {
	repo repository.SupplierRepository
}

func (p *passthroughTx) RunSuppliers(ctx context.Context, fn func(repository.SupplierRepository) error) error {
	return fn(p.repo)
}

func newSupplierFixture(t *testing.T) (*SupplierUseCase, *memSupplierRepo) {
	t.Helper()
	suppliers := newMemSupplierRepo()
	products := &memProductRepo{byID: map[int64]*entity.Product{
		1: {ID: 1, Name: "Tornillo", SKU: "SCR-01"},
	}}
	uc := NewSupplierUseCase(suppliers, products, &passthroughTx{repo: suppliers})

	for _, name := range []string{"Proveedor A", "Proveedor B"} {
		_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: name})
		require.NoError(t, err)
	}
	return uc, suppliers
}

func TestLinkToProduct_ALoSumoUnPrimario(t *testing.T) {
	uc, repo := newSupplierFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.LinkToProduct(ctx, 1, dto.LinkSupplierRequest{SupplierID: 1, IsPrimary: true}))
	require.NoError(t, uc.LinkToProduct(ctx, 1, dto.LinkSupplierRequest{SupplierID: 2, IsPrimary: true}))

	assert.Equal(t, 1, repo.primaries(1), "promover un nuevo primario degrada al anterior")
	assert.True(t, repo.links[[2]int64{1, 2}].IsPrimary)
	assert.False(t, repo.links[[2]int64{1, 1}].IsPrimary)
}

func TestLinkToProduct_SecundarioNoDegrada(t *testing.T) {
	uc, repo := newSupplierFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.LinkToProduct(ctx, 1, dto.LinkSupplierRequest{SupplierID: 1, IsPrimary: true}))
	require.NoError(t, uc.LinkToProduct(ctx, 1, dto.LinkSupplierRequest{SupplierID: 2, IsPrimary: false}))

	assert.True(t, repo.links[[2]int64{1, 1}].IsPrimary, "un vínculo secundario no toca al primario vigente")
	assert.Equal(t, 1, repo.primaries(1))
}

func TestLinkToProduct_ProductoOProveedorInexistente(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	ctx := context.Background()

	err := uc.LinkToProduct(ctx, 99, dto.LinkSupplierRequest{SupplierID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.LinkToProduct(ctx, 1, dto.LinkSupplierRequest{SupplierID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSupplier_NombreVacio(t *testing.T) {
	uc, _ := newSupplierFixture(t)
	_, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
