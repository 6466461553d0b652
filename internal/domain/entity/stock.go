package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxKilos es el tope de sanidad para cualquier cantidad de stock.
var MaxKilos = decimal.NewFromInt(999999)

// Stock representa los kilos disponibles de un tipo de café para un vendedor.
// Existe a lo sumo una fila por (SellerID, CoffeeTypeID); esa pareja es la
// llave natural. Una fila con kilos = 0 se excluye de los listados de
// disponibilidad pero solo se elimina por acción explícita del dueño.
type Stock struct {
	ID           string
	SellerID     string
	CoffeeTypeID string
	Kilos        decimal.Decimal
	UpdatedAt    time.Time
}

// StockView es la fila de listado con los datos del vendedor y del tipo de
// café ya resueltos (JOIN), tal como la consumen las tres vistas.
type StockView struct {
	ID             string
	SellerID       string
	SellerName     string
	SellerPhone    string
	Location       string
	CoffeeTypeID   string
	CoffeeTypeName string
	Kilos          decimal.Decimal
	UpdatedAt      time.Time
}
