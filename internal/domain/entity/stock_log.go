package entity

import "time"

// StockLog es un registro inmutable de un cambio de cantidad aplicado a un producto.
// Solo se crea como efecto de un cambio de stock; nunca se actualiza ni se elimina individualmente.
type StockLog struct {
	ID        string
	ProductID string
	Change    int    // positivo = entrada, negativo = salida
	Reason    string // máx. 500 caracteres
	LoggedAt  time.Time

	Product *Product
}
