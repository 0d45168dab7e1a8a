package alerts

import (
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
)

// Project mapea los registros internos al contrato JSON externo. Frontera de
// serialización pura: sin lógica de negocio.
func Project(records []AlertRecord) dto.LowStockAlertsResponse {
	out := make([]dto.LowStockAlert, 0, len(records))
	for _, r := range records {
		a := dto.LowStockAlert{
			ProductID:         r.ProductID,
			ProductName:       r.ProductName,
			SKU:               r.SKU,
			WarehouseID:       r.WarehouseID,
			WarehouseName:     r.WarehouseName,
			CurrentStock:      r.CurrentStock,
			Threshold:         r.Threshold,
			DaysUntilStockout: r.DaysUntilStockout,
		}
		if r.Supplier != nil {
			a.Supplier = &dto.AlertSupplier{
				ID:           r.Supplier.ID,
				Name:         r.Supplier.Name,
				ContactEmail: r.Supplier.ContactEmail,
			}
		}
		out = append(out, a)
	}
	return dto.NewLowStockAlertsResponse(out)
}
