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

// ProductUseCase casos de uso CRUD para productos. Los cambios de stock con historial van por inventory.StockUseCase.
type ProductUseCase struct {
	repo         repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, supplierRepo repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, supplierRepo: supplierRepo}
}

// Create crea un producto. El proveedor debe existir; si no, no se persiste nada.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(ctx, in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrSupplierNotFound
	}
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		InStock:     inStock,
		Quantity:    in.Quantity,
		Price:       in.Price.Round(2),
		CreatedAt:   time.Now().UTC(),
		SupplierID:  supplier.ID,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Supplier = supplier
	return ToProductResponse(product), nil
}

// List lista todos los productos con su proveedor.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	suppliers, err := uc.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Supplier, len(suppliers))
	for _, s := range suppliers {
		byID[s.ID] = s
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		p.Supplier = byID[p.SupplierID]
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto con su proveedor.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Update actualiza los campos presentes. La cantidad se escribe aparte y solo si viene en la
// petición; fijarla aquí no genera registro de stock.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}
	if in.Price != nil {
		product.Price = in.Price.Round(2)
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	if in.Quantity != nil {
		if err := uc.repo.UpdateQuantity(ctx, id, *in.Quantity); err != nil {
			return nil, err
		}
	}
	return uc.GetByID(ctx, id)
}

// Delete elimina un producto; la BD elimina en cascada su historial de stock.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == domain.ErrNotFound {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (uc *ProductUseCase) load(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(ctx, product.SupplierID)
	if err != nil {
		return nil, err
	}
	product.Supplier = supplier
	return product, nil
}
