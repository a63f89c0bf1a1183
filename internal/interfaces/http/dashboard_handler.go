package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/olayos/pos-api/internal/application/analytics"
	"github.com/olayos/pos-api/internal/application/dto"
)

// DashboardHandler expone el resumen del día y el historial de ventas.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del día: total, transacciones, ticket promedio, stock bajo
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// Sales godoc
// @Summary      Historial de ventas, más recientes primero
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *DashboardHandler) Sales(c *fiber.Ctx) error {
	history := h.uc.History()
	out := dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(history))}
	for _, s := range history {
		out.Items = append(out.Items, toSaleResponse(s))
	}
	out.Total = len(out.Items)
	return c.JSON(out)
}
