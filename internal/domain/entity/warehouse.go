package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// CompanyID es inmutable después de la creación.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	CreatedAt time.Time
}
