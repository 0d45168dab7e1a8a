package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
)

const alertSheet = "Alertas"

// ExportLowStockAlerts genera un libro xlsx con una fila por alerta, en el
// mismo orden en que llegan los registros. Devuelve los bytes del archivo.
func ExportLowStockAlerts(records []alerts.AlertRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(alertSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []interface{}{
		"Producto", "SKU", "Bodega", "Cantidad", "Umbral",
		"Uso total (30d)", "Uso diario promedio", "Días hasta quiebre",
		"Proveedor", "Email proveedor",
	}
	if err := f.SetSheetRow(alertSheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	for i, rec := range records {
		var days interface{}
		if rec.DaysUntilStockout != nil {
			days = *rec.DaysUntilStockout
		}
		var supplierName, supplierEmail interface{}
		if rec.Supplier != nil {
			supplierName = rec.Supplier.Name
			if rec.Supplier.ContactEmail != nil {
				supplierEmail = *rec.Supplier.ContactEmail
			}
		}
		row := []interface{}{
			rec.ProductName, rec.SKU, rec.WarehouseName,
			rec.CurrentStock, rec.Threshold,
			rec.TotalUsage, rec.AvgDailyUsage.String(), days,
			supplierName, supplierEmail,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(alertSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write alert row: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
