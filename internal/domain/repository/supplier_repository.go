package repository

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// GetByID devuelve (nil, nil) si no existe; Update y Delete devuelven domain.ErrNotFound si no afectan filas.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
}
