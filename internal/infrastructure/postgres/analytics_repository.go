package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para dashboards y reportes.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// PlatformTotals agregados globales. COALESCE evita NULL cuando no hay stock.
func (r *AnalyticsRepo) PlatformTotals(ctx context.Context) (*repository.PlatformTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = $1),
			(SELECT COUNT(*) FROM coffee_types),
			(SELECT COUNT(*) FROM stocks WHERE kilos > 0),
			(SELECT COUNT(*) FROM stocks),
			(SELECT COALESCE(SUM(kilos), 0) FROM stocks WHERE kilos > 0)`
	var t repository.PlatformTotals
	err := r.q.QueryRow(ctx, query, entity.RoleSeller).Scan(
		&t.Sellers, &t.CoffeeTypes, &t.StockRecords, &t.AllStockRecords, &t.TotalKilos,
	)
	if err != nil {
		return nil, fmt.Errorf("platform totals: %w", err)
	}
	return &t, nil
}

// SellerTotals agregados del inventario de un vendedor.
func (r *AnalyticsRepo) SellerTotals(ctx context.Context, sellerID string) (*repository.SellerTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM stocks WHERE seller_id = $1),
			(SELECT COALESCE(SUM(kilos), 0) FROM stocks WHERE seller_id = $1 AND kilos > 0)`
	var t repository.SellerTotals
	if err := r.q.QueryRow(ctx, query, sellerID).Scan(&t.StockRecords, &t.AvailableKilos); err != nil {
		return nil, fmt.Errorf("seller totals: %w", err)
	}
	return &t, nil
}

// KilosByCoffeeType kilos acumulados por tipo de café, de mayor a menor.
// Incluye tipos sin stock (LEFT JOIN con suma 0), como el reporte original.
func (r *AnalyticsRepo) KilosByCoffeeType(ctx context.Context) ([]*repository.CoffeeTypeKilos, error) {
	query := `
		SELECT ct.id, ct.name, COALESCE(SUM(s.kilos), 0) AS total_kilos
		FROM coffee_types ct
		LEFT JOIN stocks s ON ct.id = s.coffee_type_id
		GROUP BY ct.id, ct.name
		ORDER BY total_kilos DESC`
	return r.queryCoffeeTypeKilos(ctx, query)
}

// SellerDistribution kilos por tipo de café de un vendedor (solo > 0).
func (r *AnalyticsRepo) SellerDistribution(ctx context.Context, sellerID string) ([]*repository.CoffeeTypeKilos, error) {
	query := `
		SELECT ct.id, ct.name, SUM(s.kilos) AS total_kilos
		FROM stocks s
		JOIN coffee_types ct ON ct.id = s.coffee_type_id
		WHERE s.seller_id = $1 AND s.kilos > 0
		GROUP BY ct.id, ct.name
		ORDER BY total_kilos DESC`
	return r.queryCoffeeTypeKilos(ctx, query, sellerID)
}

func (r *AnalyticsRepo) queryCoffeeTypeKilos(ctx context.Context, query string, args ...any) ([]*repository.CoffeeTypeKilos, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("kilos by coffee type: %w", err)
	}
	defer rows.Close()

	var list []*repository.CoffeeTypeKilos
	for rows.Next() {
		var row repository.CoffeeTypeKilos
		if err := rows.Scan(&row.CoffeeTypeID, &row.CoffeeTypeName, &row.TotalKilos); err != nil {
			return nil, fmt.Errorf("scan coffee type kilos: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// TopSellers vendedores con más kilos disponibles, de mayor a menor.
func (r *AnalyticsRepo) TopSellers(ctx context.Context, limit int) ([]*repository.SellerKilos, error) {
	query := `
		SELECT u.id, u.name, u.location, COALESCE(SUM(s.kilos), 0) AS total_kilos
		FROM users u
		LEFT JOIN stocks s ON u.id = s.seller_id AND s.kilos > 0
		WHERE u.role = $1
		GROUP BY u.id, u.name, u.location
		ORDER BY total_kilos DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, entity.RoleSeller, limit)
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}
	defer rows.Close()

	var list []*repository.SellerKilos
	for rows.Next() {
		var row repository.SellerKilos
		if err := rows.Scan(&row.SellerID, &row.SellerName, &row.Location, &row.TotalKilos); err != nil {
			return nil, fmt.Errorf("scan top seller: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
