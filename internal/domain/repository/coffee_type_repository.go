package repository

import (
	"context"

	"github.com/jhoicas/cafetero-api/internal/domain/entity"
)

// CoffeeTypeRepository define el puerto de persistencia para CoffeeType.
// Los Get* devuelven (nil, nil) cuando el registro no existe.
type CoffeeTypeRepository interface {
	Create(ctx context.Context, ct *entity.CoffeeType) error
	Rename(ctx context.Context, ct *entity.CoffeeType) error
	GetByID(ctx context.Context, id string) (*entity.CoffeeType, error)
	// GetByName compara el nombre exacto tal como se almacena.
	GetByName(ctx context.Context, name string) (*entity.CoffeeType, error)
	List(ctx context.Context) ([]*entity.CoffeeType, error)
	// Delete retorna domain.ErrNotFound si no existe la fila.
	Delete(ctx context.Context, id string) error
}
