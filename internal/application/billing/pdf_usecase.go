package billing

import (
	"context"
	"fmt"

	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

// PDFUseCase genera el documento imprimible de una factura.
// El caso de uso recarga la factura pasando por el guard, diagrama con el
// renderer puro y delega la serialización de bytes al DocumentWriter.
type PDFUseCase struct {
	guard        *OwnershipGuard
	businessRepo repository.BusinessRepository
	clientRepo   repository.ClientRepository
	renderer     DocumentRenderer
	writer       DocumentWriter
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	guard *OwnershipGuard,
	businessRepo repository.BusinessRepository,
	clientRepo repository.ClientRepository,
	renderer DocumentRenderer,
	writer DocumentWriter,
) *PDFUseCase {
	return &PDFUseCase{
		guard:        guard,
		businessRepo: businessRepo,
		clientRepo:   clientRepo,
		renderer:     renderer,
		writer:       writer,
	}
}

// Download recarga la factura (guarded), diagrama el documento y lo
// serializa.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien; filename deriva del
//     número de factura.
//   - domain.ErrNotFound si la factura no existe o no es de la empresa.
//   - *domain.RenderError si un invariante se violó al diagramar (cliente
//     ausente o factura sin líneas): falla de servidor, no del usuario.
func (uc *PDFUseCase) Download(ctx context.Context, businessID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.guard.Invoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, "", err
	}

	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener empresa: %w", err)
	}

	// El cliente se carga directo (no por guard): la factura ya pasó el
	// guard y su ClientID es de la misma empresa por invariante del modelo.
	// El renderer igual se defiende de un cliente ausente con RenderError.
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if client != nil && client.BusinessID != inv.BusinessID {
		// cruce de tenants: corrupción de datos, se trata como ausente
		client = nil
	}

	pages, err := uc.renderer.Render(inv, business, client)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.writer.Write(ctx, pages)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: serialización fallida: %w", err)
	}

	return pdfBytes, fmt.Sprintf("%s.pdf", inv.Number), nil
}
