package repository

import (
	"context"
	"time"
)

// SupplierInfo datos del proveedor primario de un producto, tal como los
// necesita una alerta. Nil en LowStockCandidate cuando el producto no tiene
// proveedor primario (estado válido, no un error).
type SupplierInfo struct {
	ID           int64
	Name         string
	ContactEmail *string
}

// LowStockCandidate fila cruda que devuelve el store para el motor de
// alertas: inventario bajo umbral con actividad de venta reciente.
// TotalUsage es la suma de |change_amount| de las entradas negativas del
// historial dentro de la ventana de venta; siempre > 0 para un candidato.
type LowStockCandidate struct {
	InventoryID      int64
	ProductID        int64
	ProductName      string
	SKU              string
	ReorderThreshold int
	WarehouseID      int64
	WarehouseName    string
	Quantity         int64
	TotalUsage       int64
	Supplier         *SupplierInfo
}

// AlertRepository consulta de solo lectura para el motor de alertas.
// ListLowStockCandidates devuelve las filas de inventario de la empresa que
// (a) tienen al menos una entrada negativa de historial en
// [windowStart, asOf) y (b) quantity < reorder_threshold del producto.
// Las filas inactivas quedan excluidas en el store, no en memoria.
type AlertRepository interface {
	ListLowStockCandidates(ctx context.Context, companyID int64, windowStart, asOf time.Time) ([]LowStockCandidate, error)
}
