package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-stock/internal/domain"
	"github.com/jhoicas/inventario-stock/internal/domain/entity"
)

// CreateProductRequest body para POST /products.
// InStock ausente = true; Quantity ausente = 0.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"required"`
	InStock     *bool           `json:"in_stock"`
	Quantity    int             `json:"quantity" validate:"min=0,max=2147483647"`
	Price       decimal.Decimal `json:"price"`
	SupplierID  string          `json:"supplierId" validate:"required,uuid"`
}

// Validate normaliza y valida la entrada.
func (r *CreateProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.SupplierID = strings.TrimSpace(r.SupplierID)
	verr := domain.NewValidationError()
	checkStruct(r, verr)
	checkPrice(r.Price, verr)
	return verr.OrNil()
}

// UpdateProductRequest body para PUT /products/:id (actualización parcial).
// Quantity se puede fijar directamente (>= 0) sin generar registro de stock.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	InStock     *bool            `json:"in_stock"`
	Quantity    *int             `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
}

// Validate normaliza y valida solo los campos presentes.
func (r *UpdateProductRequest) Validate() error {
	verr := domain.NewValidationError()
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
		checkVar("name", name, "required,max=100", verr)
	}
	if r.Description != nil {
		desc := strings.TrimSpace(*r.Description)
		r.Description = &desc
		checkVar("description", desc, "required", verr)
	}
	if r.Quantity != nil {
		checkVar("quantity", *r.Quantity, "min=0,max=2147483647", verr)
	}
	if r.Price != nil {
		checkPrice(*r.Price, verr)
	}
	return verr.OrNil()
}

// ProductResponse salida de un producto. Price se serializa con dos decimales.
type ProductResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	InStock     bool              `json:"in_stock"`
	Quantity    int               `json:"quantity"`
	Price       decimal.Decimal   `json:"price"`
	CreatedAt   time.Time         `json:"created_at"`
	SupplierID  string            `json:"supplier_id"`
	Supplier    *SupplierResponse `json:"supplier,omitempty"`
}

// checkPrice valida el precio tal como se almacenará (redondeado a dos decimales en NUMERIC(10,2)).
func checkPrice(price decimal.Decimal, verr *domain.ValidationError) {
	rounded := price.Round(2)
	switch {
	case !price.IsPositive():
		verr.Add("price", "gt=0")
	case rounded.LessThan(entity.MinPrice):
		verr.Add("price", "min="+entity.MinPrice.String())
	case rounded.GreaterThan(entity.MaxPrice):
		verr.Add("price", "max="+entity.MaxPrice.String())
	}
}
