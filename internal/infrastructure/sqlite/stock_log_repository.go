package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implementación de StockLogRepository sobre GORM/SQLite.
type StockLogRepo struct {
	db *gorm.DB
}

// NewStockLogRepository construye el repositorio.
func NewStockLogRepository(db *gorm.DB) *StockLogRepo {
	return &StockLogRepo{db: db}
}

// Create persiste un registro de stock.
func (r *StockLogRepo) Create(ctx context.Context, log *entity.StockLog) error {
	if err := r.db.WithContext(ctx).Create(toStockLogModel(log)).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("insert stock log: %w", err)
	}
	return nil
}

// List lista todo el historial, más reciente primero.
func (r *StockLogRepo) List(ctx context.Context) ([]*entity.StockLog, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByProduct lista el historial de un producto, más reciente primero.
func (r *StockLogRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockLog, error) {
	return r.find(r.db.WithContext(ctx).Where("product_id = ?", productID))
}

func (r *StockLogRepo) find(q *gorm.DB) ([]*entity.StockLog, error) {
	var models []stockLogModel
	if err := q.Order("logged_at DESC, id DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	list := make([]*entity.StockLog, 0, len(models))
	for i := range models {
		list = append(list, models[i].toEntity())
	}
	return list, nil
}
