package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddStockRequest entrada para acumular kilos sobre un tipo de café.
type AddStockRequest struct {
	CoffeeTypeID string          `json:"coffee_type_id" validate:"required,uuid"`
	Kilos        decimal.Decimal `json:"kilos"`
}

// SetStockRequest entrada para sobreescribir los kilos de una fila propia.
type SetStockRequest struct {
	Kilos decimal.Decimal `json:"kilos"`
}

// StockResponse salida de una fila de stock del propio vendedor.
type StockResponse struct {
	ID           string          `json:"id"`
	SellerID     string          `json:"seller_id"`
	CoffeeTypeID string          `json:"coffee_type_id"`
	Kilos        decimal.Decimal `json:"kilos"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockViewResponse fila de listado con vendedor y tipo de café resueltos.
type StockViewResponse struct {
	ID             string          `json:"id"`
	SellerID       string          `json:"seller_id"`
	SellerName     string          `json:"seller_name"`
	SellerPhone    string          `json:"seller_phone"`
	Location       string          `json:"location"`
	CoffeeTypeID   string          `json:"coffee_type_id"`
	CoffeeTypeName string          `json:"coffee_type_name"`
	Kilos          decimal.Decimal `json:"kilos"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// StockListRequest criterios de listado aceptados por las tres vistas.
type StockListRequest struct {
	Search       string `query:"search"`
	SellerID     string `query:"seller_id"`
	CoffeeTypeID string `query:"coffee_type_id"`
	Location     string `query:"location"`
	Sort         string `query:"sort"`
	IncludeZero  bool   `query:"include_zero"` // solo vista admin
	PageRequest
}

// StockListResponse listado paginado de stock.
type StockListResponse struct {
	Records    []StockViewResponse `json:"records"`
	Pagination PageInfo            `json:"pagination"`
}
