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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, phone, location, password_hash, role, created_at`

// Create persiste una cuenta nueva. Teléfono duplicado -> domain.ErrPhoneAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, phone, location, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Phone, user.Location, user.PasswordHash, user.Role, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPhoneAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByPhone obtiene una cuenta por teléfono (identificador de login).
func (r *UserRepo) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
}

// GetSellerByID obtiene la cuenta solo si su rol es seller.
func (r *UserRepo) GetSellerByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND role = $2`,
		id, entity.RoleSeller,
	)
}

func (r *UserRepo) getOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Phone, &u.Location, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// ListSellers lista vendedores con búsqueda por substring (nombre, teléfono o
// ubicación) y paginación, ordenados del registro más reciente al más viejo.
func (r *UserRepo) ListSellers(ctx context.Context, search string, limit, offset int) ([]*entity.User, error) {
	where, args := sellerPredicate(search)
	query := fmt.Sprintf(`
		SELECT %s FROM users
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, userColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Location, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountSellers cuenta los vendedores que cumplen la misma búsqueda de ListSellers.
func (r *UserRepo) CountSellers(ctx context.Context, search string) (int, error) {
	where, args := sellerPredicate(search)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count sellers: %w", err)
	}
	return total, nil
}

// sellerPredicate arma el WHERE parametrizado del directorio. El valor de
// búsqueda siempre viaja como parámetro, nunca concatenado al SQL.
func sellerPredicate(search string) (string, []any) {
	where := `WHERE role = $1`
	args := []any{entity.RoleSeller}
	if search != "" {
		where += ` AND (name ILIKE $2 OR phone ILIKE $2 OR location ILIKE $2)`
		args = append(args, "%"+search+"%")
	}
	return where, args
}
