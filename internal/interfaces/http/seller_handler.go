package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/application/listing"
	"github.com/jhoicas/cafetero-api/internal/application/usecase"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

// SellerHandler directorio de vendedores y vista global de stock (admin).
type SellerHandler struct {
	sellers *usecase.SellerUseCase
	listing *listing.ListingUseCase
	log     *logger.Logger
}

// NewSellerHandler construye el handler del directorio de vendedores.
func NewSellerHandler(sellersUC *usecase.SellerUseCase, listingUC *listing.ListingUseCase, log *logger.Logger) *SellerHandler {
	return &SellerHandler{sellers: sellersUC, listing: listingUC, log: log}
}

// List godoc
// @Summary      Directorio de vendedores
// @Tags         sellers
// @Produce      json
// @Param        search  query  string  false  "búsqueda por nombre, teléfono o ubicación"
// @Param        page    query  int     false  "página (desde 1)"
// @Success      200  {object}  dto.SellerListResponse
// @Router       /api/admin/sellers [get]
func (h *SellerHandler) List(c *fiber.Ctx) error {
	var in dto.SellerListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.sellers.List(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de un vendedor con su stock disponible
// @Tags         sellers
// @Produce      json
// @Param        id  path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.SellerDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/sellers/{id} [get]
func (h *SellerHandler) Detail(c *fiber.Ctx) error {
	out, err := h.sellers.Detail(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Stocks godoc
// @Summary      Vista global de stock (todas las filas, filtrable)
// @Tags         sellers
// @Produce      json
// @Param        search         query  string  false  "búsqueda por café, vendedor o ubicación"
// @Param        seller_id      query  string  false  "filtro por vendedor"
// @Param        coffee_type_id query  string  false  "filtro por tipo de café"
// @Param        include_zero   query  bool    false  "incluir filas con kilos = 0"
// @Param        page           query  int     false  "página (desde 1)"
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/admin/stocks [get]
func (h *SellerHandler) Stocks(c *fiber.Ctx) error {
	var in dto.StockListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.listing.ListAdmin(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
