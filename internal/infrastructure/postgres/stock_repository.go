package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del puerto StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// UpsertAdd acumula kilos sobre la fila (seller, tipo) o la inserta. Una sola
// escritura condicional resuelta por el constraint único: dos requests
// concurrentes para la misma pareja suman ambos deltas, nunca se pisan.
func (r *StockRepo) UpsertAdd(ctx context.Context, sellerID, coffeeTypeID string, kilos decimal.Decimal) (*entity.Stock, error) {
	query := `
		INSERT INTO stocks (id, seller_id, coffee_type_id, kilos, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (seller_id, coffee_type_id)
		DO UPDATE SET kilos = stocks.kilos + EXCLUDED.kilos, updated_at = now()
		RETURNING id, seller_id, coffee_type_id, kilos, updated_at`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, uuid.New().String(), sellerID, coffeeTypeID, kilos).Scan(
		&s.ID, &s.SellerID, &s.CoffeeTypeID, &s.Kilos, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert stock: %w", err)
	}
	return &s, nil
}

// SetKilos sobreescribe los kilos solo si la fila pertenece al vendedor.
// (nil, nil) cuando no existe o no es suya: ambas causas son indistinguibles.
func (r *StockRepo) SetKilos(ctx context.Context, sellerID, stockID string, kilos decimal.Decimal) (*entity.Stock, error) {
	query := `
		UPDATE stocks SET kilos = $3, updated_at = now()
		WHERE id = $1 AND seller_id = $2
		RETURNING id, seller_id, coffee_type_id, kilos, updated_at`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, stockID, sellerID, kilos).Scan(
		&s.ID, &s.SellerID, &s.CoffeeTypeID, &s.Kilos, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("set stock kilos: %w", err)
	}
	return &s, nil
}

// Delete elimina la fila solo si pertenece al vendedor.
func (r *StockRepo) Delete(ctx context.Context, sellerID, stockID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stocks WHERE id = $1 AND seller_id = $2`, stockID, sellerID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una fila de stock por ID.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	query := `SELECT id, seller_id, coffee_type_id, kilos, updated_at FROM stocks WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.SellerID, &s.CoffeeTypeID, &s.Kilos, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

const stockViewSelect = `
	SELECT s.id, s.kilos, s.updated_at,
	       u.id, u.name, u.phone, u.location,
	       ct.id, ct.name
	FROM stocks s
	JOIN users u ON s.seller_id = u.id
	JOIN coffee_types ct ON s.coffee_type_id = ct.id`

// List ejecuta el listado con el predicado y orden que produce el motor de
// filtros, más LIMIT/OFFSET como parámetros.
func (r *StockRepo) List(ctx context.Context, filter repository.StockFilter, limit, offset int) ([]*entity.StockView, error) {
	where, args := stockPredicate(filter)
	query := fmt.Sprintf("%s\n\t%s\n\t%s\n\tLIMIT $%d OFFSET $%d",
		stockViewSelect, where, orderByClause(filter.Sort), len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()

	var list []*entity.StockView
	for rows.Next() {
		var v entity.StockView
		if err := rows.Scan(
			&v.ID, &v.Kilos, &v.UpdatedAt,
			&v.SellerID, &v.SellerName, &v.SellerPhone, &v.Location,
			&v.CoffeeTypeID, &v.CoffeeTypeName,
		); err != nil {
			return nil, fmt.Errorf("scan stock view: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Count cuenta las filas que cumplen el mismo predicado de List.
func (r *StockRepo) Count(ctx context.Context, filter repository.StockFilter) (int, error) {
	where, args := stockPredicate(filter)
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM stocks s
		JOIN users u ON s.seller_id = u.id
		JOIN coffee_types ct ON s.coffee_type_id = ct.id
		%s`, where)

	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count stocks: %w", err)
	}
	return total, nil
}

// CountByCoffeeType cuenta las filas que referencian el tipo (guardia de borrado).
func (r *StockRepo) CountByCoffeeType(ctx context.Context, coffeeTypeID string) (int, error) {
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stocks WHERE coffee_type_id = $1`, coffeeTypeID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count stocks by coffee type: %w", err)
	}
	return total, nil
}

// DistinctLocations ubicaciones de vendedores con stock disponible, ordenadas.
func (r *StockRepo) DistinctLocations(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT u.location
		FROM stocks s
		JOIN users u ON s.seller_id = u.id
		WHERE s.kilos > 0
		ORDER BY u.location`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("distinct locations: %w", err)
	}
	defer rows.Close()

	var locations []string
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}
