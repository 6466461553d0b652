package repository

import (
	"context"

	"github.com/jhoicas/cafetero-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	// GetSellerByID devuelve el usuario solo si su rol es seller.
	GetSellerByID(ctx context.Context, id string) (*entity.User, error)
	// ListSellers filtra por substring sobre nombre, teléfono o ubicación.
	ListSellers(ctx context.Context, search string, limit, offset int) ([]*entity.User, error)
	CountSellers(ctx context.Context, search string) (int, error)
}
