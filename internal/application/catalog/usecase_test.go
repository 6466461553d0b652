package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cafetero-api/internal/application/catalog"
	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

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

func (r *fakeTypeRepo) List(_ context.Context) ([]*entity.CoffeeType, error) {
	out := make([]*entity.CoffeeType, 0, len(r.byID))
	for _, ct := range r.byID {
		out = append(out, ct)
	}
	return out, nil
}

func (r *fakeTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// fakeStockCounter solo implementa lo que el catálogo usa: la cuenta de
// referencias por tipo y las ubicaciones del filtro.
type fakeStockCounter struct {
	countByType map[string]int
	locations   []string
}

func (r *fakeStockCounter) UpsertAdd(_ context.Context, _, _ string, _ decimal.Decimal) (*entity.Stock, error) {
	return nil, nil
}

func (r *fakeStockCounter) SetKilos(_ context.Context, _, _ string, _ decimal.Decimal) (*entity.Stock, error) {
	return nil, nil
}

func (r *fakeStockCounter) Delete(_ context.Context, _, _ string) error { return nil }

func (r *fakeStockCounter) GetByID(_ context.Context, _ string) (*entity.Stock, error) {
	return nil, nil
}

func (r *fakeStockCounter) List(_ context.Context, _ repository.StockFilter, _, _ int) ([]*entity.StockView, error) {
	return nil, nil
}

func (r *fakeStockCounter) Count(_ context.Context, _ repository.StockFilter) (int, error) {
	return 0, nil
}

func (r *fakeStockCounter) CountByCoffeeType(_ context.Context, coffeeTypeID string) (int, error) {
	return r.countByType[coffeeTypeID], nil
}

func (r *fakeStockCounter) DistinctLocations(_ context.Context) ([]string, error) {
	return r.locations, nil
}

// fakeTxRunner ejecuta el callback con los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	typeRepo  repository.CoffeeTypeRepository
	stockRepo repository.StockRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.CoffeeTypeRepository, repository.StockRepository) error) error {
	return fn(r.typeRepo, r.stockRepo)
}

func newCatalog(types []*entity.CoffeeType, counts map[string]int) (*catalog.CatalogUseCase, *fakeTypeRepo) {
	typeRepo := newFakeTypeRepo(types...)
	stockRepo := &fakeStockCounter{countByType: counts}
	tx := &fakeTxRunner{typeRepo: typeRepo, stockRepo: stockRepo}
	return catalog.NewCatalogUseCase(typeRepo, stockRepo, tx), typeRepo
}

func castillo() *entity.CoffeeType {
	return &entity.CoffeeType{ID: "ct-1", Name: "Castillo", CreatedAt: time.Now()}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateCoffeeType
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCoffeeType_Crea(t *testing.T) {
	uc, repo := newCatalog(nil, nil)

	out, err := uc.CreateCoffeeType(context.Background(), dto.SaveCoffeeTypeRequest{Name: "  Geisha  "})
	require.NoError(t, err)

	assert.Equal(t, "Geisha", out.Name, "el nombre se guarda sin espacios laterales")
	assert.NotEmpty(t, out.ID)
	assert.Len(t, repo.byID, 1)
}

func TestCreateCoffeeType_NombreDuplicadoExacto(t *testing.T) {
	uc, _ := newCatalog([]*entity.CoffeeType{castillo()}, nil)

	_, err := uc.CreateCoffeeType(context.Background(), dto.SaveCoffeeTypeRequest{Name: "Castillo"})
	assert.ErrorIs(t, err, domain.ErrCoffeeTypeExists)

	// La comparación es exacta: otra capitalización es otro nombre.
	_, err = uc.CreateCoffeeType(context.Background(), dto.SaveCoffeeTypeRequest{Name: "castillo"})
	assert.NoError(t, err)
}

func TestCreateCoffeeType_NombreInvalido(t *testing.T) {
	uc, _ := newCatalog(nil, nil)

	for _, name := range []string{"", "   ", "a"} {
		_, err := uc.CreateCoffeeType(context.Background(), dto.SaveCoffeeTypeRequest{Name: name})

		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr, "nombre %q debe rechazarse", name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RenameCoffeeType
// ──────────────────────────────────────────────────────────────────────────────

func TestRenameCoffeeType_MismoNombreNoEsDuplicado(t *testing.T) {
	// Guardar un tipo con su propio nombre no debe chocar consigo mismo.
	ct := castillo()
	uc, _ := newCatalog([]*entity.CoffeeType{ct}, nil)

	out, err := uc.RenameCoffeeType(context.Background(), ct.ID, dto.SaveCoffeeTypeRequest{Name: "Castillo"})
	require.NoError(t, err)
	assert.Equal(t, "Castillo", out.Name)
}

func TestRenameCoffeeType_NombreDeOtroTipo(t *testing.T) {
	ct := castillo()
	other := &entity.CoffeeType{ID: "ct-2", Name: "Geisha", CreatedAt: time.Now()}
	uc, _ := newCatalog([]*entity.CoffeeType{ct, other}, nil)

	_, err := uc.RenameCoffeeType(context.Background(), ct.ID, dto.SaveCoffeeTypeRequest{Name: "Geisha"})
	assert.ErrorIs(t, err, domain.ErrCoffeeTypeExists)
}

func TestRenameCoffeeType_Inexistente(t *testing.T) {
	uc, _ := newCatalog(nil, nil)

	_, err := uc.RenameCoffeeType(context.Background(), "ct-fantasma", dto.SaveCoffeeTypeRequest{Name: "Geisha"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DeleteCoffeeType — guardia de referencias
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteCoffeeType_ConStockAsociado(t *testing.T) {
	ct := castillo()
	uc, repo := newCatalog([]*entity.CoffeeType{ct}, map[string]int{ct.ID: 3})

	err := uc.DeleteCoffeeType(context.Background(), ct.ID)
	assert.ErrorIs(t, err, domain.ErrCoffeeTypeInUse)
	assert.Contains(t, repo.byID, ct.ID, "el tipo referenciado no debe borrarse")
}

func TestDeleteCoffeeType_SinReferencias(t *testing.T) {
	ct := castillo()
	uc, repo := newCatalog([]*entity.CoffeeType{ct}, nil)

	require.NoError(t, uc.DeleteCoffeeType(context.Background(), ct.ID))
	assert.NotContains(t, repo.byID, ct.ID)
}

func TestDeleteCoffeeType_Inexistente(t *testing.T) {
	uc, _ := newCatalog(nil, nil)
	assert.ErrorIs(t, uc.DeleteCoffeeType(context.Background(), "ct-fantasma"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ListLocations
// ──────────────────────────────────────────────────────────────────────────────

func TestListLocations(t *testing.T) {
	typeRepo := newFakeTypeRepo()
	stockRepo := &fakeStockCounter{locations: []string{"Chinchiná", "Salento"}}
	uc := catalog.NewCatalogUseCase(typeRepo, stockRepo, &fakeTxRunner{typeRepo: typeRepo, stockRepo: stockRepo})

	out, err := uc.ListLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Chinchiná", "Salento"}, out.Locations)
}
