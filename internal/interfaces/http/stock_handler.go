package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/application/ledger"
	"github.com/jhoicas/cafetero-api/internal/application/listing"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

// StockHandler inventario del vendedor autenticado: acumular, sobreescribir,
// eliminar y listar sus propias filas.
type StockHandler struct {
	ledger  *ledger.LedgerUseCase
	listing *listing.ListingUseCase
	log     *logger.Logger
}

// NewStockHandler construye el handler de stock del vendedor.
func NewStockHandler(ledgerUC *ledger.LedgerUseCase, listingUC *listing.ListingUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{ledger: ledgerUC, listing: listingUC, log: log}
}

// Add godoc
// @Summary      Acumular kilos sobre un tipo de café
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddStockRequest  true  "coffee_type_id, kilos"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/seller/stocks [post]
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := validateBody(c, &in); err != nil {
		return err
	}
	sctx := CurrentContext(c)
	stock, err := h.ledger.AddStock(c.Context(), sctx.UserID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	h.log.Info().Str("seller_id", sctx.UserID).Str("stock_id", stock.ID).Str("kilos", in.Kilos.String()).Msg("stock acumulado")
	return c.JSON(stock)
}

// Set godoc
// @Summary      Sobreescribir los kilos de una fila propia
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la fila de stock"
// @Param        body  body  dto.SetStockRequest  true  "kilos"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/seller/stocks/{id} [put]
func (h *StockHandler) Set(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := validateBody(c, &in); err != nil {
		return err
	}
	sctx := CurrentContext(c)
	stock, err := h.ledger.SetStock(c.Context(), sctx.UserID, c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stock)
}

// Delete godoc
// @Summary      Eliminar una fila propia de stock
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID de la fila de stock"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seller/stocks/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	sctx := CurrentContext(c)
	if err := h.ledger.DeleteStock(c.Context(), sctx.UserID, c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro de stock eliminado"})
}

// List godoc
// @Summary      Inventario propio (incluye filas en cero)
// @Tags         stock
// @Produce      json
// @Param        search         query  string  false  "búsqueda por tipo de café"
// @Param        coffee_type_id query  string  false  "filtro por tipo de café"
// @Param        sort           query  string  false  "updated_desc, updated_asc, kilos_desc, kilos_asc, name_asc, name_desc"
// @Param        page           query  int     false  "página (desde 1)"
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/seller/stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var in dto.StockListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	sctx := CurrentContext(c)
	out, err := h.listing.ListSeller(c.Context(), sctx.UserID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
