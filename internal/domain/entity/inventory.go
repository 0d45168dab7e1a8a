package entity

import "time"

// Inventory representa el stock actual de un producto en una bodega.
// El par (ProductID, WarehouseID) es único. Quantity puede quedar en negativo:
// el modelo lo permite de forma deliberada y la ruta de escritura no lo valida.
type Inventory struct {
	ID          int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
	UpdatedAt   time.Time
}
