package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

const missingID = "0f8fad5b-d9cb-469f-a165-70867728950e"

func newUseCases(t *testing.T) (*usecase.SupplierUseCase, *usecase.ProductUseCase) {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() { _ = sqlite.Close(db) })

	supplierRepo := sqlite.NewSupplierRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	return usecase.NewSupplierUseCase(supplierRepo, productRepo), usecase.NewProductUseCase(productRepo, supplierRepo)
}

func createProduct(t *testing.T, uc *usecase.ProductUseCase, supplierID string) *dto.ProductResponse {
	t.Helper()
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:        "Martillo",
		Description: "Martillo de carpintero",
		Quantity:    4,
		Price:       decimal.RequireFromString("19.999"),
		SupplierID:  supplierID,
	})
	require.NoError(t, err)
	return p
}

func TestSupplierUseCase_CreateAndGetWithProducts(t *testing.T) {
	suppliers, products := newUseCases(t)
	ctx := context.Background()

	s, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Acme", ContactEmail: "acme@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Empty(t, s.Products)

	createProduct(t, products, s.ID)

	got, err := suppliers.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "Martillo", got.Products[0].Name)

	list, err := suppliers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].Products, 1)
}

func TestSupplierUseCase_DuplicateEmail(t *testing.T) {
	suppliers, _ := newUseCases(t)
	ctx := context.Background()

	_, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "A", ContactEmail: "same@example.com"})
	require.NoError(t, err)
	_, err = suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "B", ContactEmail: "same@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSupplierUseCase_UpdatePartial(t *testing.T) {
	suppliers, _ := newUseCases(t)
	ctx := context.Background()
	s, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Acme", ContactEmail: "acme@example.com"})
	require.NoError(t, err)

	name := "Acme S.A.S."
	out, err := suppliers.Update(ctx, s.ID, dto.UpdateSupplierRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme S.A.S.", out.Name)
	assert.Equal(t, "acme@example.com", out.ContactEmail)

	_, err = suppliers.Update(ctx, missingID, dto.UpdateSupplierRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestSupplierUseCase_DeleteCascades(t *testing.T) {
	suppliers, products := newUseCases(t)
	ctx := context.Background()
	s, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Acme", ContactEmail: "acme@example.com"})
	require.NoError(t, err)
	p := createProduct(t, products, s.ID)

	require.NoError(t, suppliers.Delete(ctx, s.ID))

	_, err = products.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = suppliers.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
	assert.ErrorIs(t, suppliers.Delete(ctx, s.ID), domain.ErrSupplierNotFound)
}

func TestProductUseCase_CreateDefaultsAndRounding(t *testing.T) {
	suppliers, products := newUseCases(t)
	ctx := context.Background()
	s, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Acme", ContactEmail: "acme@example.com"})
	require.NoError(t, err)

	p := createProduct(t, products, s.ID)
	assert.True(t, p.InStock)
	assert.Equal(t, "20", p.Price.String())
	require.NotNil(t, p.Supplier)
	assert.Equal(t, s.ID, p.Supplier.ID)
	assert.Empty(t, p.Supplier.Products)
}

func TestProductUseCase_CreateWithMissingSupplierPersistsNothing(t *testing.T) {
	_, products := newUseCases(t)
	ctx := context.Background()

	_, err := products.Create(ctx, dto.CreateProductRequest{
		Name: "X", Description: "Y", Price: decimal.NewFromInt(1), SupplierID: missingID,
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)

	list, err := products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductUseCase_UpdateAndDelete(t *testing.T) {
	suppliers, products := newUseCases(t)
	ctx := context.Background()
	s, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Acme", ContactEmail: "acme@example.com"})
	require.NoError(t, err)
	p := createProduct(t, products, s.ID)

	qty := 0
	inStock := false
	out, err := products.Update(ctx, p.ID, dto.UpdateProductRequest{Quantity: &qty, InStock: &inStock})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	assert.False(t, out.InStock)
	assert.Equal(t, "Martillo", out.Name)

	_, err = products.Update(ctx, missingID, dto.UpdateProductRequest{Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	require.NoError(t, products.Delete(ctx, p.ID))
	assert.ErrorIs(t, products.Delete(ctx, p.ID), domain.ErrProductNotFound)
}

// interleavedProductRepo ejecuta beforeWrite una vez, justo antes de la primera escritura de Update.
type interleavedProductRepo struct {
	repository.ProductRepository
	beforeWrite func()
}

func (r *interleavedProductRepo) Update(ctx context.Context, p *entity.Product) error {
	if f := r.beforeWrite; f != nil {
		r.beforeWrite = nil
		f()
	}
	return r.ProductRepository.Update(ctx, p)
}

func TestProductUseCase_UpdateKeepsConcurrentStockChange(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() { _ = sqlite.Close(db) })
	ctx := context.Background()

	supplierRepo := sqlite.NewSupplierRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	logRepo := sqlite.NewStockLogRepository(db)
	stock := inventory.NewStockUseCase(sqlite.NewTxRunner(db), productRepo, supplierRepo, logRepo, logger.Nop())

	s, err := usecase.NewSupplierUseCase(supplierRepo, productRepo).Create(ctx, dto.CreateSupplierRequest{Name: "Acme", ContactEmail: "acme@example.com"})
	require.NoError(t, err)
	p, err := usecase.NewProductUseCase(productRepo, supplierRepo).Create(ctx, dto.CreateProductRequest{
		Name: "Martillo", Description: "Carpintero", Quantity: 5, Price: decimal.NewFromInt(10), SupplierID: s.ID,
	})
	require.NoError(t, err)

	repo := &interleavedProductRepo{ProductRepository: productRepo}
	repo.beforeWrite = func() {
		_, _, err := stock.ApplyStockChange(ctx, p.ID, 10, "Restock")
		require.NoError(t, err)
	}
	products := usecase.NewProductUseCase(repo, supplierRepo)

	name := "Martillo de uña"
	out, err := products.Update(ctx, p.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Martillo de uña", out.Name)
	assert.Equal(t, 15, out.Quantity)

	logs, err := stock.ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestProductUseCase_UpdateQuantityExplicitly(t *testing.T) {
	suppliers, products := newUseCases(t)
	ctx := context.Background()
	s, err := suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Acme", ContactEmail: "acme@example.com"})
	require.NoError(t, err)
	p := createProduct(t, products, s.ID)

	qty := 42
	out, err := products.Update(ctx, p.ID, dto.UpdateProductRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 42, out.Quantity)
}

func TestProductUseCase_DeleteCascadesStockLogs(t *testing.T) {
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))
	t.Cleanup(func() { _ = sqlite.Close(db) })
	ctx := context.Background()

	supplierRepo := sqlite.NewSupplierRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	logRepo := sqlite.NewStockLogRepository(db)
	stock := inventory.NewStockUseCase(sqlite.NewTxRunner(db), productRepo, supplierRepo, logRepo, logger.Nop())
	products := usecase.NewProductUseCase(productRepo, supplierRepo)

	s, err := usecase.NewSupplierUseCase(supplierRepo, productRepo).Create(ctx, dto.CreateSupplierRequest{Name: "Acme", ContactEmail: "acme@example.com"})
	require.NoError(t, err)
	p := createProduct(t, products, s.ID)
	_, _, err = stock.ApplyStockChange(ctx, p.ID, 3, "Ingreso")
	require.NoError(t, err)

	require.NoError(t, products.Delete(ctx, p.ID))

	all, err := stock.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
