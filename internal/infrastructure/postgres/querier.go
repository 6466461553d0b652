package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es el contrato mínimo de ejecución de consultas que satisfacen tanto
// *pgxpool.Pool como pgx.Tx. Los repos lo reciben para poder participar en
// transacciones sin cambiar de implementación.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
