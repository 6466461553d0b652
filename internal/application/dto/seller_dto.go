package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellerListRequest búsqueda y paginación del directorio de vendedores.
type SellerListRequest struct {
	Search string `query:"search"`
	PageRequest
}

// SellerResponse fila del directorio de vendedores (admin).
type SellerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone"`
	Location       string          `json:"location"`
	CreatedAt      time.Time       `json:"created_at"`
	StockRecords   int             `json:"stock_records"`
	AvailableKilos decimal.Decimal `json:"available_kilos"`
}

// SellerListResponse directorio paginado.
type SellerListResponse struct {
	Sellers    []SellerResponse `json:"sellers"`
	Pagination PageInfo         `json:"pagination"`
}

// SellerDetailResponse detalle de un vendedor con su stock disponible.
type SellerDetailResponse struct {
	Seller SellerResponse      `json:"seller"`
	Stocks []StockViewResponse `json:"stocks"`
}
