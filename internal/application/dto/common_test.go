package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests Paginate — metadatos de página
// ──────────────────────────────────────────────────────────────────────────────

func TestPaginate_PrimeraPagina(t *testing.T) {
	info := dto.Paginate(25, 1, 10)

	assert.Equal(t, 25, info.Total)
	assert.Equal(t, 3, info.TotalPages, "25 elementos en páginas de 10 son 3 páginas")
	assert.Equal(t, 0, info.Offset)
	assert.False(t, info.HasPrev, "la primera página no tiene anterior")
	assert.True(t, info.HasNext)
}

func TestPaginate_UltimaPaginaParcial(t *testing.T) {
	info := dto.Paginate(25, 3, 10)

	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 20, info.Offset)
	assert.True(t, info.HasPrev)
	assert.False(t, info.HasNext, "la última página no tiene siguiente")
}

func TestPaginate_TotalExacto(t *testing.T) {
	// 30 elementos en páginas de 10: exactamente 3 páginas, sin página vacía.
	info := dto.Paginate(30, 3, 10)

	assert.Equal(t, 3, info.TotalPages)
	assert.False(t, info.HasNext)
}

func TestPaginate_SinResultados(t *testing.T) {
	info := dto.Paginate(0, 1, 10)

	assert.Equal(t, 0, info.TotalPages, "sin resultados no hay páginas")
	assert.False(t, info.HasPrev)
	assert.False(t, info.HasNext)
}

func TestPaginate_PaginaFueraDeRango(t *testing.T) {
	// Página más allá del total: offset fuera de rango, el listado vuelve vacío
	// pero los metadatos siguen siendo coherentes.
	info := dto.Paginate(5, 9, 10)

	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 80, info.Offset)
	assert.True(t, info.HasPrev)
	assert.False(t, info.HasNext)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests PageRequest.Clamp — normalización de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestClamp_ValoresInvalidos(t *testing.T) {
	p := dto.PageRequest{Page: -3, Limit: 0}
	p.Clamp(12)

	assert.Equal(t, 1, p.Page, "página inválida se normaliza a 1")
	assert.Equal(t, 12, p.Limit, "límite ausente usa el valor por defecto de la vista")
}

func TestClamp_LimiteExcesivo(t *testing.T) {
	p := dto.PageRequest{Page: 2, Limit: 500}
	p.Clamp(10)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 100, p.Limit, "el límite se recorta al tope")
}

func TestClamp_ValoresValidosSeConservan(t *testing.T) {
	p := dto.PageRequest{Page: 4, Limit: 25}
	p.Clamp(10)

	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.Limit)
}
