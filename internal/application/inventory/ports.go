package inventory

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
	) error) error
}
