package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-lite/internal/application/dto"
	"github.com/jhoicas/inventario-lite/internal/store"
	"github.com/jhoicas/inventario-lite/pkg/money"
)

// DashboardHandler expone los agregados derivados del catálogo (protegido).
type DashboardHandler struct {
	st *store.Store
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(st *store.Store) *DashboardHandler {
	return &DashboardHandler{st: st}
}

// GetStats godoc
// @Summary      Agregados del dashboard (calculados en cada llamada, sin caché)
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardStatsResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats := h.st.GetStats()
	settings := h.st.Settings()
	return c.JSON(dto.DashboardStatsResponse{
		TotalProducts:   stats.TotalProducts,
		TotalStock:      stats.TotalStock,
		TotalValue:      stats.TotalValue,
		TotalValueLabel: money.Format(settings.Currency, stats.TotalValue),
		LowStock:        stats.LowStock,
	})
}
