package usecase

import (
	"github.com/jhoicas/inventario-stock/internal/application/dto"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// ToSupplierResponse convierte la entidad a DTO, incluyendo los productos cargados.
func ToSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	out := &dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		ContactEmail: s.ContactEmail,
		CreatedAt:    s.CreatedAt,
	}
	if len(s.Products) > 0 {
		out.Products = make([]dto.ProductResponse, 0, len(s.Products))
		for _, p := range s.Products {
			out.Products = append(out.Products, *ToProductResponse(p))
		}
	}
	return out
}

// ToProductResponse convierte la entidad a DTO, incluyendo el proveedor si está cargado.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		InStock:     p.InStock,
		Quantity:    p.Quantity,
		Price:       p.Price.Round(2),
		CreatedAt:   p.CreatedAt,
		SupplierID:  p.SupplierID,
	}
	if p.Supplier != nil {
		// Sin productos anidados para no generar ciclos en el JSON.
		sup := *p.Supplier
		sup.Products = nil
		out.Supplier = ToSupplierResponse(&sup)
	}
	return out
}

// ToStockLogResponse convierte la entidad a DTO, incluyendo el producto si está cargado.
func ToStockLogResponse(l *entity.StockLog) *dto.StockLogResponse {
	if l == nil {
		return nil
	}
	return &dto.StockLogResponse{
		ID:        l.ID,
		ProductID: l.ProductID,
		Change:    l.Change,
		Reason:    l.Reason,
		LoggedAt:  l.LoggedAt,
		Product:   ToProductResponse(l.Product),
	}
}
