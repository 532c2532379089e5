package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invoicefy/invoicefy-api/internal/application/usecase"
)

// DashboardHandler expone las métricas agregadas de la empresa (protegido).
type DashboardHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.AnalyticsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get GET /api/dashboard
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Dashboard(c.Context(), GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
