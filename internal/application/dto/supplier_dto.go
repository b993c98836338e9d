package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/inventario-stock/internal/domain"
)

// CreateSupplierRequest body para POST /suppliers.
type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	ContactEmail string `json:"contact_email" validate:"required,email,max=255"`
}

// Validate normaliza y valida la entrada.
func (r *CreateSupplierRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)
	verr := domain.NewValidationError()
	checkStruct(r, verr)
	return verr.OrNil()
}

// UpdateSupplierRequest body para PUT /suppliers/:id (actualización parcial).
type UpdateSupplierRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// Validate normaliza y valida solo los campos presentes.
func (r *UpdateSupplierRequest) Validate() error {
	verr := domain.NewValidationError()
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
		checkVar("name", name, "required,max=100", verr)
	}
	if r.ContactEmail != nil {
		email := strings.TrimSpace(*r.ContactEmail)
		r.ContactEmail = &email
		checkVar("contact_email", email, "required,email,max=255", verr)
	}
	return verr.OrNil()
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	ContactEmail string            `json:"contact_email"`
	CreatedAt    time.Time         `json:"created_at"`
	Products     []ProductResponse `json:"products,omitempty"`
}
