package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Límites de almacenamiento: quantity y change son INTEGER, price es NUMERIC(10,2).
const (
	MaxQuantity = math.MaxInt32
	MinChange   = math.MinInt32
	MaxChange   = math.MaxInt32
)

var (
	MinPrice = decimal.RequireFromString("0.01")
	MaxPrice = decimal.RequireFromString("99999999.99")
)

// Product representa un producto de un único proveedor.
// Invariantes: 0 <= Quantity <= MaxQuantity y MinPrice <= Price <= MaxPrice (también CHECK en la BD).
type Product struct {
	ID          string
	Name        string
	Description string
	InStock     bool
	Quantity    int
	Price       decimal.Decimal // NUMERIC(10,2)
	CreatedAt   time.Time
	SupplierID  string

	Supplier *Supplier
}

// CanApply indica si aplicar el delta deja la cantidad en un valor no negativo.
// Se compara contra -Quantity para no desbordar con deltas extremos.
func (p *Product) CanApply(delta int) bool {
	return delta >= -p.Quantity
}

// Overflows indica si aplicar el delta supera MaxQuantity.
func (p *Product) Overflows(delta int) bool {
	return delta > MaxQuantity-p.Quantity
}

// ValidChange indica si el delta cabe en la columna change.
func ValidChange(delta int) bool {
	return delta >= MinChange && delta <= MaxChange
}
