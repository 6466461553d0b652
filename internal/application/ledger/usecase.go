package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/domain"
	"github.com/jhoicas/cafetero-api/internal/domain/entity"
	"github.com/jhoicas/cafetero-api/internal/domain/repository"
)

// LedgerUseCase mutaciones del inventario de un vendedor sobre sus propias
// filas de stock. Toda operación valida antes de tocar el storage.
type LedgerUseCase struct {
	stockRepo repository.StockRepository
	typeRepo  repository.CoffeeTypeRepository
}

// NewLedgerUseCase construye el caso de uso del inventario.
func NewLedgerUseCase(stockRepo repository.StockRepository, typeRepo repository.CoffeeTypeRepository) *LedgerUseCase {
	return &LedgerUseCase{stockRepo: stockRepo, typeRepo: typeRepo}
}

// AddStock acumula kilos sobre la pareja (vendedor, tipo de café): crea la
// fila si no existe o suma sobre la existente en una sola escritura atómica
// del storage. Rechaza kilos <= 0 o mayores al tope, y tipos inexistentes.
func (uc *LedgerUseCase) AddStock(ctx context.Context, sellerID string, in dto.AddStockRequest) (*dto.StockResponse, error) {
	if in.Kilos.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("kilos", "los kilos deben ser mayores a 0")
	}
	if in.Kilos.GreaterThan(entity.MaxKilos) {
		return nil, domain.NewValidationError("kilos", "la cantidad de kilos es demasiado grande")
	}

	ct, err := uc.typeRepo.GetByID(ctx, in.CoffeeTypeID)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, domain.ErrNotFound
	}

	stock, err := uc.stockRepo.UpsertAdd(ctx, sellerID, in.CoffeeTypeID, in.Kilos)
	if err != nil {
		return nil, err
	}
	return toStockResponse(stock), nil
}

// SetStock sobreescribe los kilos de una fila propia. Acepta 0 (la fila queda
// fuera de los listados de disponibilidad pero no se elimina). Una fila ajena
// o inexistente produce el mismo domain.ErrNotFound.
func (uc *LedgerUseCase) SetStock(ctx context.Context, sellerID, stockID string, in dto.SetStockRequest) (*dto.StockResponse, error) {
	if in.Kilos.IsNegative() {
		return nil, domain.NewValidationError("kilos", "los kilos no pueden ser negativos")
	}
	if in.Kilos.GreaterThan(entity.MaxKilos) {
		return nil, domain.NewValidationError("kilos", "la cantidad de kilos es demasiado grande")
	}

	stock, err := uc.stockRepo.SetKilos(ctx, sellerID, stockID, in.Kilos)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return toStockResponse(stock), nil
}

// DeleteStock elimina una fila propia (borrado duro y explícito, la única vía
// por la que desaparece un registro de stock).
func (uc *LedgerUseCase) DeleteStock(ctx context.Context, sellerID, stockID string) error {
	return uc.stockRepo.Delete(ctx, sellerID, stockID)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:           s.ID,
		SellerID:     s.SellerID,
		CoffeeTypeID: s.CoffeeTypeID,
		Kilos:        s.Kilos,
		UpdatedAt:    s.UpdatedAt,
	}
}
