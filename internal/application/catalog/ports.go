package catalog

import (
	"context"

	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos atados a una misma transacción.
// Lo usa DeleteCoffeeType para que la guardia de referencias y el borrado
// sean una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		typeRepo repository.CoffeeTypeRepository,
		stockRepo repository.StockRepository,
	) error) error
}
