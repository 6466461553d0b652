package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/application/ledger"
	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

const (
	sellerA      = "00000000-0000-0000-0000-00000000000a"
	sellerB      = "00000000-0000-0000-0000-00000000000b"
	typeCastillo = "11111111-0000-0000-0000-000000000001"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	// una fila por pareja (seller, tipo), como el constraint único del esquema
	rows map[string]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: make(map[string]*entity.Stock)}
}

func pairKey(sellerID, coffeeTypeID string) string { return sellerID + "/" + coffeeTypeID }

func (r *fakeStockRepo) UpsertAdd(_ context.Context, sellerID, coffeeTypeID string, kilos decimal.Decimal) (*entity.Stock, error) {
	key := pairKey(sellerID, coffeeTypeID)
	if s, ok := r.rows[key]; ok {
		s.Kilos = s.Kilos.Add(kilos)
		s.UpdatedAt = time.Now()
		return s, nil
	}
	s := &entity.Stock{
		ID:           "stock-" + key,
		SellerID:     sellerID,
		CoffeeTypeID: coffeeTypeID,
		Kilos:        kilos,
		UpdatedAt:    time.Now(),
	}
	r.rows[key] = s
	return s, nil
}

func (r *fakeStockRepo) SetKilos(_ context.Context, sellerID, stockID string, kilos decimal.Decimal) (*entity.Stock, error) {
	for _, s := range r.rows {
		if s.ID == stockID && s.SellerID == sellerID {
			s.Kilos = kilos
			s.UpdatedAt = time.Now()
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) Delete(_ context.Context, sellerID, stockID string) error {
	for key, s := range r.rows {
		if s.ID == stockID && s.SellerID == sellerID {
			delete(r.rows, key)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeStockRepo) GetByID(_ context.Context, id string) (*entity.Stock, error) {
	for _, s := range r.rows {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) List(_ context.Context, _ repository.StockFilter, _, _ int) ([]*entity.StockView, error) {
	return nil, nil
}

func (r *fakeStockRepo) Count(_ context.Context, _ repository.StockFilter) (int, error) {
	return len(r.rows), nil
}

func (r *fakeStockRepo) CountByCoffeeType(_ context.Context, coffeeTypeID string) (int, error) {
	n := 0
	for _, s := range r.rows {
		if s.CoffeeTypeID == coffeeTypeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeStockRepo) DistinctLocations(_ context.Context) ([]string, error) { return nil, nil }

type fakeTypeRepo struct {
	byID map[string]*entity.CoffeeType
}

func newFakeTypeRepo(types ...*entity.CoffeeType) *fakeTypeRepo {
	r := &fakeTypeRepo{byID: make(map[string]*entity.CoffeeType)}
	for _, ct := range types {
		r.byID[ct.ID] = ct
	}
	return r
}

func (r *fakeTypeRepo) Create(_ context.Context, ct *entity.CoffeeType) error {
	r.byID[ct.ID] = ct
	return nil
}

func (r *fakeTypeRepo) Rename(_ context.Context, ct *entity.CoffeeType) error {
	r.byID[ct.ID] = ct
	return nil
}

func (r *fakeTypeRepo) GetByID(_ context.Context, id string) (*entity.CoffeeType, error) {
	return r.byID[id], nil
}

func (r *fakeTypeRepo) GetByName(_ context.Context, name string) (*entity.CoffeeType, error) {
	for _, ct := range r.byID {
		if ct.Name == name {
			return ct, nil
		}
	}
	return nil, nil
}

func (r *fakeTypeRepo) List(_ context.Context) ([]*entity.CoffeeType, error) { return nil, nil }

func (r *fakeTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newLedger() (*ledger.LedgerUseCase, *fakeStockRepo) {
	stockRepo := newFakeStockRepo()
	typeRepo := newFakeTypeRepo(&entity.CoffeeType{ID: typeCastillo, Name: "Castillo"})
	return ledger.NewLedgerUseCase(stockRepo, typeRepo), stockRepo
}

func kg(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests AddStock — acumulación sobre la pareja (vendedor, tipo)
// ──────────────────────────────────────────────────────────────────────────────

func TestAddStock_DosCargasAcumulanEnUnaFila(t *testing.T) {
	uc, repo := newLedger()
	ctx := context.Background()

	first, err := uc.AddStock(ctx, sellerA, dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: kg("10.5")})
	require.NoError(t, err)

	second, err := uc.AddStock(ctx, sellerA, dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: kg("4.5")})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "la segunda carga acumula sobre la misma fila")
	assert.True(t, second.Kilos.Equal(kg("15")), "10.5 + 4.5 = 15, obtenido %s", second.Kilos)
	assert.Len(t, repo.rows, 1, "nunca debe haber dos filas para la misma pareja")
}

func TestAddStock_VendedoresDistintosFilasDistintas(t *testing.T) {
	uc, repo := newLedger()
	ctx := context.Background()

	_, err := uc.AddStock(ctx, sellerA, dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: kg("3")})
	require.NoError(t, err)
	_, err = uc.AddStock(ctx, sellerB, dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: kg("7")})
	require.NoError(t, err)

	assert.Len(t, repo.rows, 2, "el mismo tipo para otro vendedor es otra fila")
}

func TestAddStock_RechazaKilosNoPositivos(t *testing.T) {
	uc, repo := newLedger()

	for _, kilos := range []string{"0", "-1.5"} {
		_, err := uc.AddStock(context.Background(), sellerA,
			dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: kg(kilos)})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr, "kilos %s deben rechazarse", kilos)
		assert.Contains(t, vErr.Fields, "kilos")
	}
	assert.Empty(t, repo.rows, "las cargas rechazadas no tocan el storage")
}

func TestAddStock_RechazaCantidadExcesiva(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.AddStock(context.Background(), sellerA,
		dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: entity.MaxKilos.Add(kg("1"))})

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestAddStock_TipoInexistente(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.AddStock(context.Background(), sellerA,
		dto.AddStockRequest{CoffeeTypeID: "22222222-0000-0000-0000-000000000099", Kilos: kg("5")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetStock / DeleteStock — propiedad de la fila
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStock_AceptaCero(t *testing.T) {
	uc, _ := newLedger()
	ctx := context.Background()

	created, err := uc.AddStock(ctx, sellerA, dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: kg("8")})
	require.NoError(t, err)

	updated, err := uc.SetStock(ctx, sellerA, created.ID, dto.SetStockRequest{Kilos: kg("0")})
	require.NoError(t, err)
	assert.True(t, updated.Kilos.IsZero(), "cero es válido: la fila queda sin disponibilidad pero existe")
}

func TestSetStock_RechazaNegativos(t *testing.T) {
	uc, _ := newLedger()

	_, err := uc.SetStock(context.Background(), sellerA, "stock-x", dto.SetStockRequest{Kilos: kg("-2")})

	var vErr *domain.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSetStock_FilaAjena_MismoNotFound(t *testing.T) {
	// Fila de otro vendedor e inexistente responden igual: el error no revela
	// si el registro existe.
	uc, _ := newLedger()
	ctx := context.Background()

	created, err := uc.AddStock(ctx, sellerA, dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: kg("8")})
	require.NoError(t, err)

	_, errAjena := uc.SetStock(ctx, sellerB, created.ID, dto.SetStockRequest{Kilos: kg("1")})
	_, errInexistente := uc.SetStock(ctx, sellerB, "stock-que-no-existe", dto.SetStockRequest{Kilos: kg("1")})

	assert.ErrorIs(t, errAjena, domain.ErrNotFound)
	assert.ErrorIs(t, errInexistente, domain.ErrNotFound)
}

func TestDeleteStock_FilaAjena(t *testing.T) {
	uc, repo := newLedger()
	ctx := context.Background()

	created, err := uc.AddStock(ctx, sellerA, dto.AddStockRequest{CoffeeTypeID: typeCastillo, Kilos: kg("8")})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteStock(ctx, sellerB, created.ID), domain.ErrNotFound)
	assert.Len(t, repo.rows, 1, "la fila ajena no debe borrarse")

	require.NoError(t, uc.DeleteStock(ctx, sellerA, created.ID))
	assert.Empty(t, repo.rows)
}
