package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/analytics"
	"github.com/brettsimpson1971-buildai/ride1dashboard/internal/application/dto"
)

// DashboardHandler maneja el endpoint del God View (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los KPIs del encabezado del Command Center.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_parts_on_hand, open_leaks,
// unattributed_movements, resolved_last_seven_days, generated_at).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "STORE_UNAVAILABLE", Message: err.Error(),
		})
	}
	return c.JSON(summary)
}
