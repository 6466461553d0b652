package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafetero-api/internal/application/usecase"
	"github.com/jhoicas/cafetero-api/pkg/logger"
)

// DashboardHandler dashboards y reportes agregados por rol.
type DashboardHandler struct {
	uc  *usecase.ReportUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler de dashboards.
func NewDashboardHandler(uc *usecase.ReportUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Admin godoc
// @Summary      Dashboard del admin
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.AdminDashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	out, err := h.uc.AdminDashboard(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte global del admin
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.AdminReportResponse
// @Router       /api/admin/reports [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.AdminReport(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Seller godoc
// @Summary      Dashboard del vendedor
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.SellerDashboardResponse
// @Router       /api/seller/dashboard [get]
func (h *DashboardHandler) Seller(c *fiber.Ctx) error {
	sctx := CurrentContext(c)
	out, err := h.uc.SellerDashboard(c.Context(), sctx.UserID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
