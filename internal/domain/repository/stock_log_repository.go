package repository

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// StockLogRepository define el puerto de persistencia para el historial de stock.
// Es solo de inserción: no expone Update ni Delete.
type StockLogRepository interface {
	Create(ctx context.Context, log *entity.StockLog) error
	// List y ListByProduct ordenan por logged_at descendente (más reciente primero).
	List(ctx context.Context) ([]*entity.StockLog, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockLog, error)
}
