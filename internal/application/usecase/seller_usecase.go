package usecase

import (
	"context"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/application/listing"
	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

// SellerUseCase directorio de vendedores para oversight del admin
// (solo lectura: el admin nunca muta stock ajeno).
type SellerUseCase struct {
	userRepo      repository.UserRepository
	stockRepo     repository.StockRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewSellerUseCase construye el caso de uso del directorio.
func NewSellerUseCase(userRepo repository.UserRepository, stockRepo repository.StockRepository, analyticsRepo repository.AnalyticsRepository) *SellerUseCase {
	return &SellerUseCase{userRepo: userRepo, stockRepo: stockRepo, analyticsRepo: analyticsRepo}
}

// List directorio paginado con búsqueda por nombre, teléfono o ubicación.
// Cada fila incluye los agregados de stock del vendedor.
func (uc *SellerUseCase) List(ctx context.Context, in dto.SellerListRequest) (*dto.SellerListResponse, error) {
	in.Clamp(listing.DefaultPageSize)

	total, err := uc.userRepo.CountSellers(ctx, in.Search)
	if err != nil {
		return nil, err
	}
	info := dto.Paginate(total, in.Page, in.Limit)

	sellers, err := uc.userRepo.ListSellers(ctx, in.Search, info.Limit, info.Offset)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		row, err := uc.toSellerResponse(ctx, s)
		if err != nil {
			return nil, err
		}
		rows = append(rows, *row)
	}
	return &dto.SellerListResponse{Sellers: rows, Pagination: info}, nil
}

// Detail vendedor con su stock disponible ordenado por actualización.
func (uc *SellerUseCase) Detail(ctx context.Context, sellerID string) (*dto.SellerDetailResponse, error) {
	seller, err := uc.userRepo.GetSellerByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}

	row, err := uc.toSellerResponse(ctx, seller)
	if err != nil {
		return nil, err
	}

	filter := repository.StockFilter{Scope: repository.ScopeSeller, SellerID: sellerID}
	views, err := uc.stockRepo.List(ctx, filter, listing.DefaultPageSize*10, 0)
	if err != nil {
		return nil, err
	}
	stocks := make([]dto.StockViewResponse, 0, len(views))
	for _, v := range views {
		if v.Kilos.IsZero() {
			continue // el detalle muestra solo disponibilidad
		}
		stocks = append(stocks, listing.ToStockViewResponse(v))
	}
	return &dto.SellerDetailResponse{Seller: *row, Stocks: stocks}, nil
}

func (uc *SellerUseCase) toSellerResponse(ctx context.Context, s *entity.User) (*dto.SellerResponse, error) {
	totals, err := uc.analyticsRepo.SellerTotals(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	return &dto.SellerResponse{
		ID:             s.ID,
		Name:           s.Name,
		Phone:          s.Phone,
		Location:       s.Location,
		CreatedAt:      s.CreatedAt,
		StockRecords:   totals.StockRecords,
		AvailableKilos: totals.AvailableKilos,
	}, nil
}
