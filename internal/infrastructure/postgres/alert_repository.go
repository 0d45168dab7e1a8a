package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo consulta de solo lectura del motor de alertas sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador de lectura para alertas.
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// ListLowStockCandidates devuelve las filas de inventario de la empresa con
// cantidad bajo el umbral del producto y al menos una salida registrada en
// la ventana [windowStart, asOf). El filtro de actividad vive en el store:
// el agregado "usage" solo produce filas para inventarios con entradas
// negativas en la ventana, de modo que el INNER JOIN excluye las filas
// inactivas sin traerlas a memoria. El proveedor primario se resuelve con
// un LATERAL LIMIT 1 por si los datos llegaran con más de un primario.
func (r *AlertRepo) ListLowStockCandidates(ctx context.Context, companyID int64, windowStart, asOf time.Time) ([]repository.LowStockCandidate, error) {
	query := `
		SELECT i.id, p.id, p.name, p.sku, p.reorder_threshold,
		       w.id, w.name, i.quantity, usage.total_usage,
		       s.id, s.name, s.contact_email
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		JOIN (
			SELECT h.inventory_id, SUM(-h.change_amount) AS total_usage
			FROM inventory_history h
			WHERE h.change_amount < 0
			  AND h.created_at >= $2
			  AND h.created_at < $3
			GROUP BY h.inventory_id
		) usage ON usage.inventory_id = i.id
		LEFT JOIN LATERAL (
			SELECT sp.id, sp.name, sp.contact_email
			FROM product_suppliers ps
			JOIN suppliers sp ON sp.id = ps.supplier_id
			WHERE ps.product_id = p.id AND ps.is_primary
			ORDER BY sp.id
			LIMIT 1
		) s ON TRUE
		WHERE w.company_id = $1
		  AND i.quantity < p.reorder_threshold`
	rows, err := r.q.Query(ctx, query, companyID, windowStart, asOf)
	if err != nil {
		return nil, fmt.Errorf("list low stock candidates: %w", err)
	}
	defer rows.Close()

	var candidates []repository.LowStockCandidate
	for rows.Next() {
		var c repository.LowStockCandidate
		var supplierID *int64
		var supplierName *string
		var supplierEmail *string
		if err := rows.Scan(
			&c.InventoryID, &c.ProductID, &c.ProductName, &c.SKU, &c.ReorderThreshold,
			&c.WarehouseID, &c.WarehouseName, &c.Quantity, &c.TotalUsage,
			&supplierID, &supplierName, &supplierEmail,
		); err != nil {
			return nil, fmt.Errorf("scan low stock candidate: %w", err)
		}
		if supplierID != nil {
			c.Supplier = &repository.SupplierInfo{
				ID:           *supplierID,
				Name:         *supplierName,
				ContactEmail: supplierEmail,
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}
