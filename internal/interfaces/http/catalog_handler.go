package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/dto"
	"github.com/jhoicas/cafetero-api/internal/application/listing"
	"github.com/jhoicas/cafetero-api/internal/application/usecase"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

// CatalogHandler catálogo público de disponibilidad: no requiere sesión.
type CatalogHandler struct {
	listing *listing.ListingUseCase
	reports *usecase.ReportUseCase
	log     *logger.Logger
}

// NewCatalogHandler construye el handler del catálogo público.
func NewCatalogHandler(listingUC *listing.ListingUseCase, reportsUC *usecase.ReportUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{listing: listingUC, reports: reportsUC, log: log}
}

// Stocks godoc
// @Summary      Catálogo público de stock disponible
// @Tags         catalog
// @Produce      json
// @Param        search         query  string  false  "búsqueda por café, vendedor o ubicación"
// @Param        coffee_type_id query  string  false  "filtro por tipo de café"
// @Param        location       query  string  false  "filtro por ubicación"
// @Param        sort           query  string  false  "updated_desc, kilos_desc, name_asc, location_asc, ..."
// @Param        page           query  int     false  "página (desde 1)"
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/catalog/stocks [get]
func (h *CatalogHandler) Stocks(c *fiber.Ctx) error {
	var in dto.StockListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.listing.ListPublic(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas del catálogo público
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogStatsResponse
// @Router       /api/catalog/stats [get]
func (h *CatalogHandler) Stats(c *fiber.Ctx) error {
	out, err := h.reports.CatalogStats(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
