package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/inventario-stock/internal/domain"
)

// ChangeStockRequest body para POST /products/:id/stock.
type ChangeStockRequest struct {
	Change int    `json:"change" validate:"min=-2147483648,max=2147483647"`
	Reason string `json:"reason" validate:"required,max=500"`
}

// Validate normaliza y valida la entrada.
func (r *ChangeStockRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	verr := domain.NewValidationError()
	checkStruct(r, verr)
	return verr.OrNil()
}

// CreateStockLogRequest body para POST /stock-logs.
// UpdateStock ausente = true; con false solo se registra el historial, sin tocar la cantidad.
type CreateStockLogRequest struct {
	ProductID   string `json:"productId" validate:"required,uuid"`
	Change      int    `json:"change" validate:"min=-2147483648,max=2147483647"`
	Reason      string `json:"reason" validate:"required,max=500"`
	UpdateStock *bool  `json:"updateStock"`
}

// Validate normaliza y valida la entrada.
func (r *CreateStockLogRequest) Validate() error {
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.Reason = strings.TrimSpace(r.Reason)
	verr := domain.NewValidationError()
	checkStruct(r, verr)
	return verr.OrNil()
}

// ShouldUpdateStock resuelve el valor por defecto de UpdateStock.
func (r CreateStockLogRequest) ShouldUpdateStock() bool {
	return r.UpdateStock == nil || *r.UpdateStock
}

// StockLogResponse salida de un registro de stock.
type StockLogResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Change    int              `json:"change"`
	Reason    string           `json:"reason"`
	LoggedAt  time.Time        `json:"logged_at"`
	Product   *ProductResponse `json:"product,omitempty"`
}
