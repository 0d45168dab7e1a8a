package entity

import "time"

// Supplier representa un proveedor. ContactEmail es opcional.
type Supplier struct {
	ID           int64
	Name         string
	ContactEmail *string
	CreatedAt    time.Time
}

// ProductSupplier vincula un producto con un proveedor (muchos a muchos).
// Por convención hay a lo sumo un vínculo con IsPrimary = true por producto;
// el caso de uso de vinculación lo garantiza dentro de la misma transacción.
type ProductSupplier struct {
	ProductID  int64
	SupplierID int64
	IsPrimary  bool
}
