package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItemRequest una línea de la factura tal como llega del formulario.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// CreateInvoiceRequest creación de factura. Las tasas son porcentajes 0–100;
// ausentes se tratan como cero (decimal.Decimal zero value).
type CreateInvoiceRequest struct {
	ClientID     string            `json:"clientId"`
	Items        []LineItemRequest `json:"items"`
	TaxRate      decimal.Decimal   `json:"tax"`
	DiscountRate decimal.Decimal   `json:"discount"`
}

// UpdateStatusRequest cambio de estado de pago de una factura.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// LineItemResponse una línea en respuestas.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// InvoiceResponse factura completa con totales derivados.
type InvoiceResponse struct {
	ID           string             `json:"id"`
	BusinessID   string             `json:"businessId"`
	ClientID     string             `json:"clientId"`
	Number       string             `json:"invoiceNumber"`
	Items        []LineItemResponse `json:"items"`
	DiscountRate decimal.Decimal    `json:"discount"`
	TaxRate      decimal.Decimal    `json:"tax"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	TaxAmount    decimal.Decimal    `json:"taxAmount"`
	Total        decimal.Decimal    `json:"total"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateClientRequest actualización de cliente (BusinessID nunca cambia).
type UpdateClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID         string    `json:"id"`
	BusinessID string    `json:"businessId"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DashboardResponse métricas del tablero de la empresa.
type DashboardResponse struct {
	TotalInvoices             int             `json:"totalInvoices"`
	PaidInvoices              int             `json:"paidInvoices"`
	UnpaidInvoices            int             `json:"unpaidInvoices"`
	OverdueInvoices           int             `json:"overdueInvoices"`
	TotalRevenue              decimal.Decimal `json:"totalRevenue"`
	OutstandingAmount         decimal.Decimal `json:"outstandingAmount"`
	InvoicesCreatedLast30Days int             `json:"invoicesCreatedLast30Days"`
}
