package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
	"github.com/jhoicas/inventario-stock/internal/domain/repository"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	productRepo repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, productRepo repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un nuevo proveedor. El email duplicado se reporta como domain.ErrDuplicate.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		ID:           uuid.New().String(),
		Name:         in.Name,
		ContactEmail: in.ContactEmail,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return ToSupplierResponse(supplier), nil
}

// List lista todos los proveedores con sus productos.
func (uc *SupplierUseCase) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	bySupplier := make(map[string][]*entity.Product, len(suppliers))
	for _, p := range products {
		bySupplier[p.SupplierID] = append(bySupplier[p.SupplierID], p)
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		s.Products = bySupplier[s.ID]
		items = append(items, *ToSupplierResponse(s))
	}
	return items, nil
}

// GetByID obtiene un proveedor con sus productos.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	products, err := uc.productRepo.ListBySupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	supplier.Products = products
	return ToSupplierResponse(supplier), nil
}

// Update actualiza los campos presentes del proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.ContactEmail != nil {
		supplier.ContactEmail = *in.ContactEmail
	}
	if err := uc.repo.Update(ctx, supplier); err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un proveedor; la BD elimina en cascada sus productos y sus registros de stock.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	supplier, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrSupplierNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrSupplierNotFound
		}
		return err
	}
	return nil
}
