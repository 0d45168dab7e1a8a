package alerts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

func TestProject_ListaVacia_NuncaNull(t *testing.T) {
	out := Project(nil)
	assert.Equal(t, 0, out.TotalAlerts)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alerts":[],"total_alerts":0}`, string(raw))
}

func TestProject_CamposNulos(t *testing.T) {
	days := int64(3)
	out := Project([]AlertRecord{
		{ProductID: 1, ProductName: "A", SKU: "A-1", WarehouseID: 7, WarehouseName: "Central",
			CurrentStock: 2, Threshold: 10, DaysUntilStockout: &days,
			Supplier: &repository.SupplierInfo{ID: 3, Name: "Acme"}},
		{ProductID: 2, ProductName: "B", SKU: "B-1", WarehouseID: 7, WarehouseName: "Central",
			CurrentStock: 4, Threshold: 10},
	})
	require.Equal(t, 2, out.TotalAlerts)

	raw, err := json.Marshal(out.Alerts[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"days_until_stockout":3`)
	assert.Contains(t, string(raw), `"contact_email":null`,
		"proveedor sin email serializa el campo como null, no lo omite")

	raw, err = json.Marshal(out.Alerts[1])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"days_until_stockout":null`)
	assert.Contains(t, string(raw), `"supplier":null`)
}
