package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre
// PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de persistencia para
// proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y asigna el ID generado.
func (r *SupplierRepo) Create(ctx context.Context, supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, contact_email, created_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		supplier.Name, supplier.ContactEmail, supplier.CreatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID; (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	query := `SELECT id, name, contact_email, created_at FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List devuelve proveedores con paginación.
func (r *SupplierRepo) List(ctx context.Context, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT id, name, contact_email, created_at FROM suppliers ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactEmail, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpsertLink crea o actualiza el vínculo producto-proveedor. Una FK rota
// (producto o proveedor inexistente) se traduce a domain.ErrNotFound.
func (r *SupplierRepo) UpsertLink(ctx context.Context, link *entity.ProductSupplier) error {
	query := `
		INSERT INTO product_suppliers (product_id, supplier_id, is_primary)
		VALUES ($1, $2, $3)
		ON CONFLICT (product_id, supplier_id)
		DO UPDATE SET is_primary = EXCLUDED.is_primary`
	_, err := r.q.Exec(ctx, query, link.ProductID, link.SupplierID, link.IsPrimary)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("upsert product supplier: %w", err)
	}
	return nil
}

// DemotePrimary baja a false cualquier vínculo primario existente del
// producto. Se invoca dentro de la transacción de vinculación.
func (r *SupplierRepo) DemotePrimary(ctx context.Context, productID int64) error {
	query := `UPDATE product_suppliers SET is_primary = FALSE WHERE product_id = $1 AND is_primary`
	if _, err := r.q.Exec(ctx, query, productID); err != nil {
		return fmt.Errorf("demote primary supplier: %w", err)
	}
	return nil
}
