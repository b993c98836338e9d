package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre GORM/SQLite (usable con db o tx).
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el repositorio.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := r.db.WithContext(ctx).Create(toProductModel(product)).Error; err != nil {
		return translateProductErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var m productModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return m.toEntity(), nil
}

// GetForUpdate equivale a GetByID: SQLite no tiene bloqueo por fila y la única conexión
// abierta ya serializa las transacciones.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// List lista todos los productos.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListBySupplier lista los productos de un proveedor.
func (r *ProductRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("supplier_id = ?", supplierID))
}

func (r *ProductRepo) find(q *gorm.DB) ([]*entity.Product, error) {
	var models []productModel
	if err := q.Order("created_at, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list := make([]*entity.Product, 0, len(models))
	for i := range models {
		list = append(list, models[i].toEntity())
	}
	return list, nil
}

// Update actualiza los campos editables sin tocar la cantidad (solo UpdateQuantity la escribe).
// Se usa un map para que false también se escriba.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Model(&productModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":        product.Name,
			"description": product.Description,
			"in_stock":    product.InStock,
			"price":       product.Price,
		})
	if err := result.Error; err != nil {
		return translateProductErr("update product", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity fija la cantidad del producto.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	result := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", id).Update("quantity", quantity)
	if err := result.Error; err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("update product quantity: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina un producto; la FK con ON DELETE CASCADE elimina su historial.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&productModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func translateProductErr(op string, err error) error {
	switch {
	case isForeignKeyViolation(err):
		return domain.ErrSupplierNotFound
	case isCheckViolation(err):
		return domain.ErrInvalidInput
	}
	return fmt.Errorf("%s: %w", op, err)
}
