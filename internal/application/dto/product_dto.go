package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto con stock inicial
// opcional. Price acepta string o número JSON (decimal.Decimal parsea ambos);
// un valor no numérico hace fallar el BodyParser y se reporta como entrada
// inválida. WarehouseID e InitialQuantity son opcionales: InitialQuantity sin
// WarehouseID es un error del caller.
type CreateProductRequest struct {
	Name             string           `json:"name"`
	SKU              string           `json:"sku"`
	Price            *decimal.Decimal `json:"price"`
	ReorderThreshold *int             `json:"reorder_threshold,omitempty"`
	WarehouseID      *int64           `json:"warehouse_id,omitempty"`
	InitialQuantity  *int64           `json:"initial_quantity,omitempty"`
}

// CreateProductResponse salida de la creación: el contrato expone el ID
// asignado por el store.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Price            decimal.Decimal `json:"price"`
	ReorderThreshold int             `json:"reorder_threshold"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// ToProductResponse proyecta la entidad al contrato externo.
func ToProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		SKU:              p.SKU,
		Price:            p.Price,
		ReorderThreshold: p.ReorderThreshold,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
