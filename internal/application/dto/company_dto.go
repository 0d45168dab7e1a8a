package dto

import (
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCompanyResponse proyecta la entidad al contrato externo.
func ToCompanyResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}
