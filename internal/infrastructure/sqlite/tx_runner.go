package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/jhoicas/inventario-stock/internal/application/inventory"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción GORM (Commit si fn retorna nil, Rollback si no).
type TxRunner struct {
	db *gorm.DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run ejecuta fn con repositorios atados a la transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.StockLogRepository,
) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewProductRepository(tx), NewStockLogRepository(tx))
	})
}
