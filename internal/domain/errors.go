package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrPhoneAlreadyExists = errors.New("el teléfono ya está registrado")
	ErrCoffeeTypeExists   = errors.New("el tipo de café ya existe")
	ErrCoffeeTypeInUse    = errors.New("el tipo de café tiene stock asociado")
)

// ValidationError agrupa errores de validación por campo. La operación se
// rechaza antes de cualquier mutación; el llamador re-presenta el formulario
// con los mensajes por campo.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError crea un error de validación con un solo campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add agrega (o sobreescribe) el mensaje de un campo.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

// HasErrors indica si hay al menos un campo inválido.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validación fallida"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}
