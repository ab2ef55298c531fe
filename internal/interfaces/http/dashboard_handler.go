package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stockcontrol-api/internal/application/analytics"
	"github.com/tu-usuario/stockcontrol-api/internal/application/dto"
)

// DashboardHandler maneja el endpoint del resumen de inventario.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen de salud del inventario.
// GET /api/dashboard
//
// Respuesta: DashboardSummaryDTO (total_products, products_available,
// products_critical, unread_alerts, latest_unread_alerts[5]).
// Todos los conteos provienen del mismo snapshot de lectura.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
