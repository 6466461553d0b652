package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// PlatformTotals agregados globales para el dashboard y reportes del admin.
type PlatformTotals struct {
	Sellers         int
	CoffeeTypes     int
	StockRecords    int             // filas de stock con kilos > 0
	AllStockRecords int             // todas las filas, incluidas las de kilos 0
	TotalKilos      decimal.Decimal // suma de kilos disponibles
}

// SellerTotals agregados del inventario de un vendedor.
type SellerTotals struct {
	StockRecords   int             // todas sus filas
	AvailableKilos decimal.Decimal // suma con kilos > 0
}

// CoffeeTypeKilos kilos acumulados por tipo de café.
type CoffeeTypeKilos struct {
	CoffeeTypeID   string
	CoffeeTypeName string
	TotalKilos     decimal.Decimal
}

// SellerKilos kilos acumulados por vendedor (top de reportes).
type SellerKilos struct {
	SellerID   string
	SellerName string
	Location   string
	TotalKilos decimal.Decimal
}

// AnalyticsRepository consultas agregadas de solo lectura para dashboards y
// reportes. Sin garantía de snapshot: refleja algún estado recientemente
// confirmado.
type AnalyticsRepository interface {
	PlatformTotals(ctx context.Context) (*PlatformTotals, error)
	SellerTotals(ctx context.Context, sellerID string) (*SellerTotals, error)
	KilosByCoffeeType(ctx context.Context) ([]*CoffeeTypeKilos, error)
	// SellerDistribution kilos por tipo de café de un vendedor (solo > 0).
	SellerDistribution(ctx context.Context, sellerID string) ([]*CoffeeTypeKilos, error)
	TopSellers(ctx context.Context, limit int) ([]*SellerKilos, error)
}
