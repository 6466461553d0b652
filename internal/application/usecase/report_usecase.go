package usecase

import (
	"context"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/application/listing"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

const (
	recentStocksLimit = 5
	topSellersLimit   = 10
)

// ReportUseCase agregados para dashboards y reportes. Solo lectura; la capa
// de presentación de números queda fuera (el caso de uso entrega crudos).
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	stockRepo     repository.StockRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository, stockRepo repository.StockRepository) *ReportUseCase {
	return &ReportUseCase{analyticsRepo: analyticsRepo, stockRepo: stockRepo}
}

// AdminReport totales globales, kilos por tipo de café y top de vendedores.
func (uc *ReportUseCase) AdminReport(ctx context.Context) (*dto.AdminReportResponse, error) {
	totals, err := uc.analyticsRepo.PlatformTotals(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := uc.analyticsRepo.KilosByCoffeeType(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.analyticsRepo.TopSellers(ctx, topSellersLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.AdminReportResponse{
		TotalSellers:      totals.Sellers,
		TotalCoffeeTypes:  totals.CoffeeTypes,
		TotalStockRecords: totals.AllStockRecords,
		TotalKilos:        totals.TotalKilos,
		ByCoffeeType:      make([]dto.CoffeeTypeKilosResponse, 0, len(byType)),
		TopSellers:        make([]dto.TopSellerResponse, 0, len(top)),
	}
	for _, row := range byType {
		out.ByCoffeeType = append(out.ByCoffeeType, toCoffeeTypeKilos(row))
	}
	for _, row := range top {
		out.TopSellers = append(out.TopSellers, dto.TopSellerResponse{
			SellerID:   row.SellerID,
			SellerName: row.SellerName,
			Location:   row.Location,
			TotalKilos: row.TotalKilos,
		})
	}
	return out, nil
}

// AdminDashboard resumen global más las últimas actualizaciones de stock.
func (uc *ReportUseCase) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	totals, err := uc.analyticsRepo.PlatformTotals(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := uc.analyticsRepo.KilosByCoffeeType(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.recentStocks(ctx, repository.StockFilter{Scope: repository.ScopeAdmin})
	if err != nil {
		return nil, err
	}

	out := &dto.AdminDashboardResponse{
		TotalSellers:      totals.Sellers,
		TotalCoffeeTypes:  totals.CoffeeTypes,
		TotalStockRecords: totals.StockRecords,
		TotalKilos:        totals.TotalKilos,
		RecentStocks:      recent,
		Distribution:      make([]dto.CoffeeTypeKilosResponse, 0, len(byType)),
	}
	for _, row := range byType {
		out.Distribution = append(out.Distribution, toCoffeeTypeKilos(row))
	}
	return out, nil
}

// SellerDashboard resumen del inventario propio del vendedor.
func (uc *ReportUseCase) SellerDashboard(ctx context.Context, sellerID string) (*dto.SellerDashboardResponse, error) {
	totals, err := uc.analyticsRepo.SellerTotals(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	distribution, err := uc.analyticsRepo.SellerDistribution(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	recent, err := uc.recentStocks(ctx, repository.StockFilter{
		Scope:    repository.ScopeSeller,
		SellerID: sellerID,
	})
	if err != nil {
		return nil, err
	}

	out := &dto.SellerDashboardResponse{
		StockRecords:   totals.StockRecords,
		AvailableKilos: totals.AvailableKilos,
		RecentStocks:   recent,
		Distribution:   make([]dto.CoffeeTypeKilosResponse, 0, len(distribution)),
	}
	for _, row := range distribution {
		out.Distribution = append(out.Distribution, toCoffeeTypeKilos(row))
	}
	return out, nil
}

// CatalogStats estadísticas del catálogo público.
func (uc *ReportUseCase) CatalogStats(ctx context.Context) (*dto.CatalogStatsResponse, error) {
	totals, err := uc.analyticsRepo.PlatformTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CatalogStatsResponse{
		AvailableRecords: totals.StockRecords,
		TotalKilos:       totals.TotalKilos,
	}, nil
}

func (uc *ReportUseCase) recentStocks(ctx context.Context, filter repository.StockFilter) ([]dto.StockViewResponse, error) {
	views, err := uc.stockRepo.List(ctx, filter, recentStocksLimit, 0)
	if err != nil {
		return nil, err
	}
	recent := make([]dto.StockViewResponse, 0, len(views))
	for _, v := range views {
		recent = append(recent, listing.ToStockViewResponse(v))
	}
	return recent, nil
}

func toCoffeeTypeKilos(row *repository.CoffeeTypeKilos) dto.CoffeeTypeKilosResponse {
	return dto.CoffeeTypeKilosResponse{
		CoffeeTypeID:   row.CoffeeTypeID,
		CoffeeTypeName: row.CoffeeTypeName,
		TotalKilos:     row.TotalKilos,
	}
}
