package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

var _ repository.CoffeeTypeRepository = (*CoffeeTypeRepo)(nil)

// CoffeeTypeRepo implementación del puerto CoffeeTypeRepository sobre PostgreSQL (usable con pool o tx).
type CoffeeTypeRepo struct {
	q Querier
}

// NewCoffeeTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCoffeeTypeRepository(q Querier) *CoffeeTypeRepo {
	return &CoffeeTypeRepo{q: q}
}

// Create persiste un tipo de café. Nombre duplicado -> domain.ErrCoffeeTypeExists
// (cubre la carrera que se le escapa a la verificación previa del caso de uso).
func (r *CoffeeTypeRepo) Create(ctx context.Context, ct *entity.CoffeeType) error {
	query := `INSERT INTO coffee_types (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, ct.ID, ct.Name, ct.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCoffeeTypeExists
		}
		return fmt.Errorf("insert coffee type: %w", err)
	}
	return nil
}

// Rename actualiza el nombre de un tipo existente.
func (r *CoffeeTypeRepo) Rename(ctx context.Context, ct *entity.CoffeeType) error {
	cmd, err := r.q.Exec(ctx, `UPDATE coffee_types SET name = $2 WHERE id = $1`, ct.ID, ct.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCoffeeTypeExists
		}
		return fmt.Errorf("rename coffee type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene un tipo por ID.
func (r *CoffeeTypeRepo) GetByID(ctx context.Context, id string) (*entity.CoffeeType, error) {
	return r.getOne(ctx, `SELECT id, name, created_at FROM coffee_types WHERE id = $1`, id)
}

// GetByName obtiene un tipo por nombre exacto (columna sensible a mayúsculas).
func (r *CoffeeTypeRepo) GetByName(ctx context.Context, name string) (*entity.CoffeeType, error) {
	return r.getOne(ctx, `SELECT id, name, created_at FROM coffee_types WHERE name = $1`, name)
}

func (r *CoffeeTypeRepo) getOne(ctx context.Context, query string, args ...any) (*entity.CoffeeType, error) {
	var ct entity.CoffeeType
	err := r.q.QueryRow(ctx, query, args...).Scan(&ct.ID, &ct.Name, &ct.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coffee type: %w", err)
	}
	return &ct, nil
}

// List lista todos los tipos ordenados por nombre.
func (r *CoffeeTypeRepo) List(ctx context.Context) ([]*entity.CoffeeType, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM coffee_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list coffee types: %w", err)
	}
	defer rows.Close()

	var list []*entity.CoffeeType
	for rows.Next() {
		var ct entity.CoffeeType
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan coffee type: %w", err)
		}
		list = append(list, &ct)
	}
	return list, rows.Err()
}

// Delete elimina un tipo por ID. El FK RESTRICT de stocks convierte cualquier
// referencia viva en domain.ErrCoffeeTypeInUse aunque la guardia ya se haya
// verificado.
func (r *CoffeeTypeRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM coffee_types WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCoffeeTypeInUse
		}
		return fmt.Errorf("delete coffee type: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
