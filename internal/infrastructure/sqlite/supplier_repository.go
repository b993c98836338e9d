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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación de SupplierRepository sobre GORM/SQLite.
type SupplierRepo struct {
	db *gorm.DB
}

// NewSupplierRepository construye el repositorio.
func NewSupplierRepository(db *gorm.DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	if err := r.db.WithContext(ctx).Create(toSupplierModel(supplier)).Error; err != nil {
		if isDuplicate(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	var m supplierModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return m.toEntity(), nil
}

// List lista todos los proveedores.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	var models []supplierModel
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	list := make([]*entity.Supplier, 0, len(models))
	for i := range models {
		list = append(list, models[i].toEntity())
	}
	return list, nil
}

// Update actualiza nombre y email.
func (r *SupplierRepo) Update(ctx context.Context, supplier *entity.Supplier) error {
	result := r.db.WithContext(ctx).Model(&supplierModel{}).
		Where("id = ?", supplier.ID).
		Updates(map[string]any{"name": supplier.Name, "contact_email": supplier.ContactEmail})
	if err := result.Error; err != nil {
		if isDuplicate(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor; la FK con ON DELETE CASCADE elimina productos e historial.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&supplierModel{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
