// Package alerts implementa el motor de alertas de stock bajo: una
// agregación de solo lectura sobre el historial de inventario en la ventana
// de venta de 30 días.
package alerts

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// saleWindow ventana de venta fija: los 30 días previos al instante de
// evaluación. El promedio diario se divide siempre entre 30, no entre los
// días con actividad.
const (
	saleWindowDays = 30
	storeTimeout   = 5 * time.Second
)

// AlertRecord registro interno de una alerta, previo a la proyección al
// contrato JSON. DaysUntilStockout es nil cuando el uso promedio es cero.
type AlertRecord struct {
	ProductID         int64
	ProductName       string
	SKU               string
	WarehouseID       int64
	WarehouseName     string
	CurrentStock      int64
	Threshold         int
	TotalUsage        int64
	AvgDailyUsage     decimal.Decimal
	DaysUntilStockout *int64
	Supplier          *repository.SupplierInfo
}

// LowStockUseCase calcula las alertas de stock bajo por empresa.
type LowStockUseCase struct {
	companyRepo repository.CompanyRepository
	alertRepo   repository.AlertRepository
}

// NewLowStockUseCase construye el motor de alertas.
func NewLowStockUseCase(companyRepo repository.CompanyRepository, alertRepo repository.AlertRepository) *LowStockUseCase {
	return &LowStockUseCase{companyRepo: companyRepo, alertRepo: alertRepo}
}

// ComputeLowStockAlerts devuelve las alertas de la empresa al instante asOf.
// Regla de negocio: solo se reportan productos bajo umbral CON demanda
// reciente demostrada (≥1 salida en la ventana); un producto bajo pero
// dormido se omite a propósito, no es un bug. Una empresa inexistente es
// ErrNotFound, distinto de una empresa con cero alertas.
//
// Orden determinista del resultado: days_until_stockout ascendente (nulls al
// final), luego product id, luego warehouse id.
func (uc *LowStockUseCase) ComputeLowStockAlerts(ctx context.Context, companyID int64, asOf time.Time) ([]AlertRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, domain.Storage(err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	asOf = asOf.UTC()
	windowStart := asOf.AddDate(0, 0, -saleWindowDays)
	candidates, err := uc.alertRepo.ListLowStockCandidates(ctx, companyID, windowStart, asOf)
	if err != nil {
		return nil, domain.Storage(err)
	}

	window := decimal.NewFromInt(saleWindowDays)
	records := make([]AlertRecord, 0, len(candidates))
	for _, c := range candidates {
		rec := AlertRecord{
			ProductID:     c.ProductID,
			ProductName:   c.ProductName,
			SKU:           c.SKU,
			WarehouseID:   c.WarehouseID,
			WarehouseName: c.WarehouseName,
			CurrentStock:  c.Quantity,
			Threshold:     c.ReorderThreshold,
			TotalUsage:    c.TotalUsage,
			Supplier:      c.Supplier,
		}
		// TotalUsage > 0 está garantizado por la consulta (la fila exige al
		// menos una salida en la ventana), pero un uso cero jamás divide:
		// en ese caso el horizonte queda explícitamente en nil.
		if c.TotalUsage > 0 {
			avg := decimal.NewFromInt(c.TotalUsage).Div(window)
			rec.AvgDailyUsage = avg
			days := decimal.NewFromInt(c.Quantity).Div(avg).Floor().IntPart()
			rec.DaysUntilStockout = &days
		}
		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch {
		case a.DaysUntilStockout == nil && b.DaysUntilStockout != nil:
			return false
		case a.DaysUntilStockout != nil && b.DaysUntilStockout == nil:
			return true
		case a.DaysUntilStockout != nil && b.DaysUntilStockout != nil &&
			*a.DaysUntilStockout != *b.DaysUntilStockout:
			return *a.DaysUntilStockout < *b.DaysUntilStockout
		}
		if a.ProductID != b.ProductID {
			return a.ProductID < b.ProductID
		}
		return a.WarehouseID < b.WarehouseID
	})

	return records, nil
}
