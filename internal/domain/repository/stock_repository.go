package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafetero-api/internal/domain/entity"
)

// StockScope identifica cuál de las tres vistas de listado está consultando.
type StockScope int

const (
	// ScopePublic catálogo público: siempre kilos > 0.
	ScopePublic StockScope = iota
	// ScopeSeller inventario propio del vendedor (requiere SellerID).
	ScopeSeller
	// ScopeAdmin vista global del admin; kilos > 0 salvo IncludeZero.
	ScopeAdmin
)

// StockFilter son los criterios de listado. Todos los filtros presentes se
// combinan con AND; la búsqueda libre hace OR entre tipo de café, nombre del
// vendedor y ubicación. El valor de Sort fuera de la lista permitida cae al
// orden por defecto (actualización más reciente).
type StockFilter struct {
	Scope        StockScope
	SellerID     string // obligatorio en ScopeSeller; filtro exacto opcional en ScopeAdmin
	CoffeeTypeID string
	Search       string
	Location     string
	Sort         string
	IncludeZero  bool // solo ScopeAdmin: incluir filas con kilos = 0
}

// StockRepository define el puerto de persistencia para Stock.
type StockRepository interface {
	// UpsertAdd acumula kilos sobre la fila (sellerID, coffeeTypeID) o la crea.
	// Es una sola escritura condicional atómica en el storage (ON CONFLICT),
	// nunca un read-modify-write en aplicación.
	UpsertAdd(ctx context.Context, sellerID, coffeeTypeID string, kilos decimal.Decimal) (*entity.Stock, error)
	// SetKilos sobreescribe kilos de la fila solo si pertenece al vendedor.
	// Devuelve (nil, nil) si la fila no existe o no es suya.
	SetKilos(ctx context.Context, sellerID, stockID string, kilos decimal.Decimal) (*entity.Stock, error)
	// Delete elimina la fila solo si pertenece al vendedor; domain.ErrNotFound
	// cubre tanto inexistencia como propiedad ajena.
	Delete(ctx context.Context, sellerID, stockID string) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	List(ctx context.Context, filter StockFilter, limit, offset int) ([]*entity.StockView, error)
	Count(ctx context.Context, filter StockFilter) (int, error)
	// CountByCoffeeType cuenta las filas que referencian el tipo (guardia de borrado).
	CountByCoffeeType(ctx context.Context, coffeeTypeID string) (int, error)
	// DistinctLocations ubicaciones de vendedores con stock disponible.
	DistinctLocations(ctx context.Context) ([]string, error)
}
