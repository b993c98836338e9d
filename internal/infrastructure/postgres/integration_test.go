package postgres_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-stock/pkg/config"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// Requiere una base PostgreSQL desechable: TEST_DATABASE_URL=postgres://... go test ./...
func openPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

func seed(t *testing.T, pool *pgxpool.Pool, qty int) (*entity.Supplier, *entity.Product) {
	t.Helper()
	ctx := context.Background()
	s := &entity.Supplier{
		ID: uuid.New().String(), Name: "Acme", ContactEmail: uuid.New().String() + "@example.com", CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, postgres.NewSupplierRepository(pool).Create(ctx, s))
	t.Cleanup(func() { _ = postgres.NewSupplierRepository(pool).Delete(context.Background(), s.ID) })

	p := &entity.Product{
		ID: uuid.New().String(), Name: "Tornillo", Description: "3/8", InStock: true, Quantity: qty,
		Price: decimal.RequireFromString("10.50"), CreatedAt: time.Now().UTC(), SupplierID: s.ID,
	}
	require.NoError(t, postgres.NewProductRepository(pool).Create(ctx, p))
	return s, p
}

func TestPostgres_DuplicateEmail(t *testing.T) {
	pool := openPool(t)
	s, _ := seed(t, pool, 0)

	err := postgres.NewSupplierRepository(pool).Create(context.Background(), &entity.Supplier{
		ID: uuid.New().String(), Name: "Otro", ContactEmail: s.ContactEmail, CreatedAt: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPostgres_ConcurrentDeductions(t *testing.T) {
	pool := openPool(t)
	_, p := seed(t, pool, 5)
	products := postgres.NewProductRepository(pool)
	logs := postgres.NewStockLogRepository(pool)
	uc := inventory.NewStockUseCase(postgres.NewTxRunner(pool), products, postgres.NewSupplierRepository(pool), logs, logger.Nop())

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, _, err := uc.ApplyStockChange(context.Background(), p.ID, -1, "Venta"); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	got, err := products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, ok)
	assert.Equal(t, 0, got.Quantity)

	entries, err := logs.ListByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}
