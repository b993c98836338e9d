package entity

import "time"

// Supplier representa un proveedor. Al eliminarlo se eliminan en cascada sus productos.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string // único
	CreatedAt    time.Time

	Products []*Product // relación cargada por el caso de uso en lecturas
}
