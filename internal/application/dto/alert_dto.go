package dto

// AlertSupplier proveedor primario dentro de una alerta. El objeto completo
// es null cuando el producto no tiene proveedor primario.
type AlertSupplier struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email"`
}

// LowStockAlert contrato externo de una alerta de stock bajo.
// DaysUntilStockout es null cuando el uso promedio es cero: nunca se reporta
// un horizonte infinito fabricado.
type LowStockAlert struct {
	ProductID         int64          `json:"product_id"`
	ProductName       string         `json:"product_name"`
	SKU               string         `json:"sku"`
	WarehouseID       int64          `json:"warehouse_id"`
	WarehouseName     string         `json:"warehouse_name"`
	CurrentStock      int64          `json:"current_stock"`
	Threshold         int            `json:"threshold"`
	DaysUntilStockout *int64         `json:"days_until_stockout"`
	Supplier          *AlertSupplier `json:"supplier"`
}

// LowStockAlertsResponse envoltura de la lista: TotalAlerts es siempre la
// longitud de Alerts.
type LowStockAlertsResponse struct {
	Alerts      []LowStockAlert `json:"alerts"`
	TotalAlerts int             `json:"total_alerts"`
}

// NewLowStockAlertsResponse arma la envoltura; con lista vacía devuelve
// alerts: [] y total_alerts: 0, nunca null.
func NewLowStockAlertsResponse(alerts []LowStockAlert) LowStockAlertsResponse {
	if alerts == nil {
		alerts = []LowStockAlert{}
	}
	return LowStockAlertsResponse{Alerts: alerts, TotalAlerts: len(alerts)}
}
