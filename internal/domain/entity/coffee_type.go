package entity

import "time"

// CoffeeType es la entidad de referencia compartida que administra el admin.
// El nombre es único y se compara tal como se almacena (sensible a mayúsculas).
// No puede eliminarse mientras exista stock que lo referencie.
type CoffeeType struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
