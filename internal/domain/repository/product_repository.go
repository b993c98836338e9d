package repository

import (
	"context"

	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Product, error)
	// Update escribe los campos descriptivos y el precio; nunca la cantidad.
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}
