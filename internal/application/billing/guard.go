// Package billing contiene los casos de uso de facturación: creación de
// facturas, ciclo de estado de pago, clientes y generación del documento.
// Toda operación recibe el businessID autenticado como parámetro explícito y
// pasa primero por el OwnershipGuard.
package billing

import (
	"context"

	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

// OwnershipGuard verifica que toda entidad alcanzable desde una petición
// pertenezca a la empresa del llamador, a través de la cadena
// Business → Client → Invoice.
//
// Un registro ausente y un registro de otra empresa fallan igual, con
// domain.ErrNotFound: distinguirlos revelaría a un tenant la existencia de
// registros ajenos. Ninguna ruta de código debe tocar una entidad cargada por
// ID de una petición sin pasar por aquí.
type OwnershipGuard struct {
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
}

// NewOwnershipGuard construye el guard.
func NewOwnershipGuard(clientRepo repository.ClientRepository, invoiceRepo repository.InvoiceRepository) *OwnershipGuard {
	return &OwnershipGuard{clientRepo: clientRepo, invoiceRepo: invoiceRepo}
}

// Client carga el cliente y verifica que pertenezca a businessID.
// Solo lectura; la falla es terminal para la petición.
func (g *OwnershipGuard) Client(_ context.Context, businessID, clientID string) (*entity.Client, error) {
	client, err := g.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err // falla de repositorio: se propaga sin transformar
	}
	if client == nil || client.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return client, nil
}

// Invoice carga la factura y verifica que pertenezca a businessID.
func (g *OwnershipGuard) Invoice(_ context.Context, businessID, invoiceID string) (*entity.Invoice, error) {
	inv, err := g.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}
