package billing

import (
	"context"

	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/layout"
)

// DocumentWriter serializa la diagramación del documento a un formato de
// bytes concreto (PDF). La paginación ya viene decidida en las páginas: el
// adaptador no debe re-paginar.
type DocumentWriter interface {
	Write(ctx context.Context, pages []layout.Page) ([]byte, error)
}

// DocumentRenderer diagrama una factura como páginas posicionadas.
// Implementado por layout.Renderer; el puerto existe para poder sustituirlo
// en tests del caso de uso.
type DocumentRenderer interface {
	Render(inv *entity.Invoice, business *entity.Business, client *entity.Client) ([]layout.Page, error)
}
