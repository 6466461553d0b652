package listing

import (
	"context"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

// Tamaños de página por defecto de cada vista.
const (
	DefaultPageSize       = 10
	DefaultPublicPageSize = 12
)

// ListingUseCase listado de stock para las tres vistas (catálogo público,
// inventario del vendedor, vista global del admin). La misma operación con
// distinto alcance por defecto.
type ListingUseCase struct {
	stockRepo repository.StockRepository
}

// NewListingUseCase construye el caso de uso de listados.
func NewListingUseCase(stockRepo repository.StockRepository) *ListingUseCase {
	return &ListingUseCase{stockRepo: stockRepo}
}

// ListPublic catálogo público: solo disponibilidad (kilos > 0).
func (uc *ListingUseCase) ListPublic(ctx context.Context, in dto.StockListRequest) (*dto.StockListResponse, error) {
	in.Clamp(DefaultPublicPageSize)
	filter := repository.StockFilter{
		Scope:        repository.ScopePublic,
		Search:       in.Search,
		CoffeeTypeID: in.CoffeeTypeID,
		Location:     in.Location,
		Sort:         in.Sort,
	}
	return uc.list(ctx, filter, in.PageRequest)
}

// ListSeller inventario propio del vendedor autenticado, incluidas las filas
// en cero (las administra desde aquí).
func (uc *ListingUseCase) ListSeller(ctx context.Context, sellerID string, in dto.StockListRequest) (*dto.StockListResponse, error) {
	in.Clamp(DefaultPageSize)
	filter := repository.StockFilter{
		Scope:        repository.ScopeSeller,
		SellerID:     sellerID,
		Search:       in.Search,
		CoffeeTypeID: in.CoffeeTypeID,
		Sort:         in.Sort,
	}
	return uc.list(ctx, filter, in.PageRequest)
}

// ListAdmin vista global del admin; IncludeZero permite inspeccionar también
// las filas con kilos = 0.
func (uc *ListingUseCase) ListAdmin(ctx context.Context, in dto.StockListRequest) (*dto.StockListResponse, error) {
	in.Clamp(DefaultPageSize)
	filter := repository.StockFilter{
		Scope:        repository.ScopeAdmin,
		SellerID:     in.SellerID,
		Search:       in.Search,
		CoffeeTypeID: in.CoffeeTypeID,
		Location:     in.Location,
		Sort:         in.Sort,
		IncludeZero:  in.IncludeZero,
	}
	return uc.list(ctx, filter, in.PageRequest)
}

func (uc *ListingUseCase) list(ctx context.Context, filter repository.StockFilter, page dto.PageRequest) (*dto.StockListResponse, error) {
	total, err := uc.stockRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	info := dto.Paginate(total, page.Page, page.Limit)

	views, err := uc.stockRepo.List(ctx, filter, info.Limit, info.Offset)
	if err != nil {
		return nil, err
	}
	records := make([]dto.StockViewResponse, 0, len(views))
	for _, v := range views {
		records = append(records, ToStockViewResponse(v))
	}
	return &dto.StockListResponse{Records: records, Pagination: info}, nil
}

// ToStockViewResponse mapea la fila de listado. El teléfono del vendedor va
// incluido: es el canal de contacto que publica el catálogo.
func ToStockViewResponse(v *entity.StockView) dto.StockViewResponse {
	return dto.StockViewResponse{
		ID:             v.ID,
		SellerID:       v.SellerID,
		SellerName:     v.SellerName,
		SellerPhone:    v.SellerPhone,
		Location:       v.Location,
		CoffeeTypeID:   v.CoffeeTypeID,
		CoffeeTypeName: v.CoffeeTypeName,
		Kilos:          v.Kilos,
		UpdatedAt:      v.UpdatedAt,
	}
}
