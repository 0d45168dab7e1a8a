package dto

import (
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name string `json:"name"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToWarehouseResponse proyecta la entidad al contrato externo.
func ToWarehouseResponse(w *entity.Warehouse) *WarehouseResponse {
	if w == nil {
		return nil
	}
	return &WarehouseResponse{ID: w.ID, CompanyID: w.CompanyID, Name: w.Name, CreatedAt: w.CreatedAt}
}
