package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/invoicefy/invoicefy-api/internal/application/billing"
	"github.com/invoicefy/invoicefy-api/internal/application/dto"
)

// InvoiceHandler maneja creación, consulta, cambio de estado y descarga PDF
// de facturas (protegido).
type InvoiceHandler struct {
	invoiceUC *billing.InvoiceUseCase
	statusUC  *billing.StatusUseCase
	pdfUC     *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(invoiceUC *billing.InvoiceUseCase, statusUC *billing.StatusUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, statusUC: statusUC, pdfUC: pdfUC}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.invoiceUC.Create(c.Context(), GetBusinessID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/invoices?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.invoiceUC.List(c.Context(), GetBusinessID(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	resp, err := h.invoiceUC.Get(c.Context(), GetBusinessID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus PUT /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.statusUC.SetStatus(c.Context(), GetBusinessID(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Download GET /api/invoices/:id/pdf
// Responde el PDF como attachment nombrado por el número de factura.
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.Download(c.Context(), GetBusinessID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
