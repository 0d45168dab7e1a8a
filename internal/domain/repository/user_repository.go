package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios del API.
// FindByEmail devuelve (nil, nil) si el email no está registrado.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
