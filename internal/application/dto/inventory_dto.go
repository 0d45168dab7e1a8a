package dto

// RegisterMovementRequest body para POST /api/inventory/movements.
// ChangeAmount positivo = entrada de stock, negativo = salida/venta.
// El movimiento agrega una fila de historial y muta la cantidad en la misma
// transacción; la cantidad resultante puede quedar en negativo.
type RegisterMovementRequest struct {
	ProductID    int64  `json:"product_id"`
	WarehouseID  int64  `json:"warehouse_id"`
	ChangeAmount int64  `json:"change_amount"`
	Reason       string `json:"reason"`
}

// RegisterMovementResponse salida del movimiento: cantidad resultante y el
// ID de correlación del lote de auditoría.
type RegisterMovementResponse struct {
	InventoryID   int64  `json:"inventory_id"`
	Quantity      int64  `json:"quantity"`
	TransactionID string `json:"transaction_id"`
}
