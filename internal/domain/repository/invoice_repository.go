package repository

import "github.com/invoicefy/invoicefy-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Las líneas viven embebidas en la factura (JSONB), no hay tabla de detalle.
// UpdateStatus es la única mutación permitida después de la creación: los
// totales y el created_at nunca se tocan.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error)
	UpdateStatus(invoice *entity.Invoice) error
}
