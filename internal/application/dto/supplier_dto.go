package dto

import (
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name         string  `json:"name"`
	ContactEmail *string `json:"contact_email,omitempty"`
}

// LinkSupplierRequest entrada para vincular un proveedor a un producto.
type LinkSupplierRequest struct {
	SupplierID int64 `json:"supplier_id"`
	IsPrimary  bool  `json:"is_primary"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ContactEmail *string   `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToSupplierResponse proyecta la entidad al contrato externo.
func ToSupplierResponse(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail, CreatedAt: s.CreatedAt}
}
