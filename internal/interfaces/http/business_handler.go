package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invoicefy/invoicefy-api/internal/application/dto"
	"github.com/invoicefy/invoicefy-api/internal/application/usecase"
)

// BusinessHandler maneja el perfil de la empresa autenticada (protegido).
// No hay :id en las rutas: la empresa sale siempre del token.
type BusinessHandler struct {
	uc *usecase.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *usecase.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get GET /api/business
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.GetProfile(c.Context(), GetBusinessID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/business
// El GSTIN no es actualizable: el request no lo incluye.
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.UpdateProfile(c.Context(), GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
