package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cafetero-api/internal/application/catalog"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

var _ catalog.TxRunner = (*TxRunner)(nil)

// TxRunner abre una transacción sobre el pool y entrega repos atados a ella.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el ejecutor de transacciones.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run ejecuta fn dentro de una transacción. Commit solo si fn retorna nil;
// cualquier error hace rollback y se propaga al llamador.
func (r *TxRunner) Run(ctx context.Context, fn func(
	typeRepo repository.CoffeeTypeRepository,
	stockRepo repository.StockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewCoffeeTypeRepository(tx), NewStockRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
