package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acme-dashboard/internal/application/analytics"
)

// DashboardHandler sirve el resumen del dashboard.
type DashboardHandler struct {
	uc    *analytics.DashboardUseCase
	cache PageCache
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, cache PageCache) *DashboardHandler {
	return &DashboardHandler{uc: uc, cache: cache}
}

// Summary GET /dashboard — tarjetas, gráfico de ingresos y últimas facturas.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return cachedJSON(c, h.cache, func() (any, error) {
		return h.uc.GetSummary(c.Context())
	})
}
