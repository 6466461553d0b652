package dto

import "github.com/shopspring/decimal"

// CoffeeTypeKilosResponse kilos acumulados por tipo de café.
type CoffeeTypeKilosResponse struct {
	CoffeeTypeID   string          `json:"coffee_type_id"`
	CoffeeTypeName string          `json:"coffee_type_name"`
	TotalKilos     decimal.Decimal `json:"total_kilos"`
}

// TopSellerResponse fila del top de vendedores por kilos.
type TopSellerResponse struct {
	SellerID   string          `json:"seller_id"`
	SellerName string          `json:"seller_name"`
	Location   string          `json:"location"`
	TotalKilos decimal.Decimal `json:"total_kilos"`
}

// AdminReportResponse agregados globales para reportes del admin.
type AdminReportResponse struct {
	TotalSellers      int                       `json:"total_sellers"`
	TotalCoffeeTypes  int                       `json:"total_coffee_types"`
	TotalStockRecords int                       `json:"total_stock_records"`
	TotalKilos        decimal.Decimal           `json:"total_kilos"`
	ByCoffeeType      []CoffeeTypeKilosResponse `json:"by_coffee_type"`
	TopSellers        []TopSellerResponse       `json:"top_sellers"`
}

// AdminDashboardResponse resumen del dashboard del admin.
type AdminDashboardResponse struct {
	TotalSellers      int                       `json:"total_sellers"`
	TotalCoffeeTypes  int                       `json:"total_coffee_types"`
	TotalStockRecords int                       `json:"total_stock_records"`
	TotalKilos        decimal.Decimal           `json:"total_kilos"`
	RecentStocks      []StockViewResponse       `json:"recent_stocks"`
	Distribution      []CoffeeTypeKilosResponse `json:"distribution"`
}

// SellerDashboardResponse resumen del dashboard del vendedor.
type SellerDashboardResponse struct {
	StockRecords   int                       `json:"stock_records"`
	AvailableKilos decimal.Decimal           `json:"available_kilos"`
	RecentStocks   []StockViewResponse       `json:"recent_stocks"`
	Distribution   []CoffeeTypeKilosResponse `json:"distribution"`
}

// CatalogStatsResponse estadísticas del catálogo público.
type CatalogStatsResponse struct {
	AvailableRecords int             `json:"available_records"`
	TotalKilos       decimal.Decimal `json:"total_kilos"`
}

// LocationListResponse ubicaciones con stock disponible (filtro del catálogo).
type LocationListResponse struct {
	Locations []string `json:"locations"`
}
