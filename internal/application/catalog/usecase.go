package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

// CatalogUseCase administración de tipos de café (solo admin) y su lectura
// pública. El nombre es único y se compara exacto, tal como se almacena.
type CatalogUseCase struct {
	typeRepo  repository.CoffeeTypeRepository
	stockRepo repository.StockRepository
	tx        TxRunner
}

// NewCatalogUseCase construye el caso de uso del catálogo.
func NewCatalogUseCase(typeRepo repository.CoffeeTypeRepository, stockRepo repository.StockRepository, tx TxRunner) *CatalogUseCase {
	return &CatalogUseCase{typeRepo: typeRepo, stockRepo: stockRepo, tx: tx}
}

// CreateCoffeeType crea un tipo de café. Nombre ya existente (comparación
// exacta) produce domain.ErrCoffeeTypeExists, también cuando la carrera la
// resuelve el constraint único del storage.
func (uc *CatalogUseCase) CreateCoffeeType(ctx context.Context, in dto.SaveCoffeeTypeRequest) (*dto.CoffeeTypeResponse, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	existing, err := uc.typeRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCoffeeTypeExists
	}

	ct := &entity.CoffeeType{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.typeRepo.Create(ctx, ct); err != nil {
		return nil, err
	}
	return toCoffeeTypeResponse(ct), nil
}

// RenameCoffeeType cambia el nombre de un tipo existente. El duplicado se
// verifica excluyendo la fila que se está editando.
func (uc *CatalogUseCase) RenameCoffeeType(ctx context.Context, id string, in dto.SaveCoffeeTypeRequest) (*dto.CoffeeTypeResponse, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	ct, err := uc.typeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, domain.ErrNotFound
	}

	other, err := uc.typeRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != ct.ID {
		return nil, domain.ErrCoffeeTypeExists
	}

	ct.Name = name
	if err := uc.typeRepo.Rename(ctx, ct); err != nil {
		return nil, err
	}
	return toCoffeeTypeResponse(ct), nil
}

// DeleteCoffeeType elimina un tipo sin stock asociado. La cuenta de
// referencias y el DELETE corren en una misma transacción; además el FK
// RESTRICT del esquema respalda la guardia ante cualquier carrera.
func (uc *CatalogUseCase) DeleteCoffeeType(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(typeRepo repository.CoffeeTypeRepository, stockRepo repository.StockRepository) error {
		count, err := stockRepo.CountByCoffeeType(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrCoffeeTypeInUse
		}
		return typeRepo.Delete(ctx, id)
	})
}

// ListCoffeeTypes lista todos los tipos ordenados por nombre.
func (uc *CatalogUseCase) ListCoffeeTypes(ctx context.Context) (*dto.CoffeeTypeListResponse, error) {
	list, err := uc.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CoffeeTypeResponse, 0, len(list))
	for _, ct := range list {
		items = append(items, *toCoffeeTypeResponse(ct))
	}
	return &dto.CoffeeTypeListResponse{Items: items}, nil
}

// ListLocations ubicaciones de vendedores con stock disponible (datos del
// filtro del catálogo público).
func (uc *CatalogUseCase) ListLocations(ctx context.Context) (*dto.LocationListResponse, error) {
	locations, err := uc.stockRepo.DistinctLocations(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.LocationListResponse{Locations: locations}, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewValidationError("name", "el nombre del tipo de café es requerido")
	}
	if len(name) < 2 {
		return "", domain.NewValidationError("name", "el nombre debe tener al menos 2 caracteres")
	}
	return name, nil
}

func toCoffeeTypeResponse(ct *entity.CoffeeType) *dto.CoffeeTypeResponse {
	if ct == nil {
		return nil
	}
	return &dto.CoffeeTypeResponse{
		ID:        ct.ID,
		Name:      ct.Name,
		CreatedAt: ct.CreatedAt,
	}
}
