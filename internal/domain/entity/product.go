package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultReorderThreshold umbral de reorden aplicado cuando el request no
// especifica uno.
const DefaultReorderThreshold = 10

// Product representa un producto del catálogo. SKU se guarda ya normalizado
// (sin espacios, mayúsculas) y es único a nivel global; Price es un valor de
// punto fijo con 2 decimales (NUMERIC(10,2) en el store, nunca float binario).
// El stock se maneja por bodega en Inventory.
type Product struct {
	ID               int64
	Name             string
	SKU              string
	Price            decimal.Decimal
	ReorderThreshold int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
