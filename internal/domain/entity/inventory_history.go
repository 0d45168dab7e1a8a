package entity

import "time"

// ReasonInitialStock razón registrada para la primera entrada de stock que
// acompaña la creación de un producto.
const ReasonInitialStock = "Initial stock"

// InventoryHistory es el registro de auditoría append-only de una fila de
// inventario: positivo = entrada de stock, negativo = salida/venta.
// Nunca se actualiza ni se borra; CreatedAt se fija al insertar (UTC).
type InventoryHistory struct {
	ID            int64
	InventoryID   int64
	ChangeAmount  int64
	Reason        string
	TransactionID string
	CreatedAt     time.Time
}
