package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ayoubkh/noorinv-api/internal/application/analytics"
)

// DashboardHandler resumen agregado del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Description  Alertas de stock bajo, total de activos por categoría y
// @Description  distribución por subsección, recalculados en cada petición.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
