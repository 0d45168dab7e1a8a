package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// Create asigna el ID generado por el store en product.ID y devuelve
// domain.ErrConflict ante una violación del índice único de SKU.
// GetBySKU espera el SKU ya normalizado y devuelve (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
