package dto

import "time"

// SaveCoffeeTypeRequest entrada para crear o renombrar un tipo de café.
type SaveCoffeeTypeRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// CoffeeTypeResponse salida de un tipo de café.
type CoffeeTypeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CoffeeTypeListResponse lista completa de tipos (ordenada por nombre).
type CoffeeTypeListResponse struct {
	Items []CoffeeTypeResponse `json:"items"`
}
