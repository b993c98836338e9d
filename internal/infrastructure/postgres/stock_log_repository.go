package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implementación sobre PostgreSQL (usable con pool o tx). Solo inserción y lectura.
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

// Create persiste un registro de stock.
func (r *StockLogRepo) Create(ctx context.Context, log *entity.StockLog) error {
	query := `
		INSERT INTO stock_logs (id, product_id, change, reason, logged_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, log.ID, log.ProductID, log.Change, log.Reason, log.LoggedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		if isOutOfRange(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert stock log: %w", err)
	}
	return nil
}

// List lista todo el historial, más reciente primero.
func (r *StockLogRepo) List(ctx context.Context) ([]*entity.StockLog, error) {
	return r.list(ctx, `
		SELECT id, product_id, change, reason, logged_at
		FROM stock_logs ORDER BY logged_at DESC, id DESC`)
}

// ListByProduct lista el historial de un producto, más reciente primero.
func (r *StockLogRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockLog, error) {
	return r.list(ctx, `
		SELECT id, product_id, change, reason, logged_at
		FROM stock_logs WHERE product_id = $1 ORDER BY logged_at DESC, id DESC`, productID)
}

func (r *StockLogRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockLog, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLog
	for rows.Next() {
		var l entity.StockLog
		if err := rows.Scan(&l.ID, &l.ProductID, &l.Change, &l.Reason, &l.LoggedAt); err != nil {
			return nil, fmt.Errorf("scan stock log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
