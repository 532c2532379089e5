package billing

import (
	"context"
	"time"

	"github.com/invoicefy/invoicefy-api/internal/application/dto"
	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

// StatusUseCase gobierna el ciclo de estado de pago de una factura.
//
// Los tres estados (Unpaid, Paid, Overdue) son correcciones del operador, no
// un ciclo estricto: cualquier estado puede pasar a cualquier otro. La única
// regla estructural es la pertenencia al conjunto.
type StatusUseCase struct {
	guard       *OwnershipGuard
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

// NewStatusUseCase construye el caso de uso. nowFn nil usa time.Now.
func NewStatusUseCase(guard *OwnershipGuard, invoiceRepo repository.InvoiceRepository, nowFn func() time.Time) *StatusUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &StatusUseCase{guard: guard, invoiceRepo: invoiceRepo, now: nowFn}
}

// SetStatus cambia el estado de pago: guard primero, luego validación de
// pertenencia al conjunto, luego persistencia del nuevo valor. No recalcula
// totales ni toca la fecha de creación.
func (uc *StatusUseCase) SetStatus(ctx context.Context, businessID, invoiceID, newStatus string) (*dto.InvoiceResponse, error) {
	inv, err := uc.guard.Invoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, err
	}
	if !entity.ValidStatus(newStatus) {
		return nil, domain.NewValidationError("status", "el estado debe ser Unpaid, Paid u Overdue")
	}

	inv.Status = newStatus
	inv.UpdatedAt = uc.now()
	if err := uc.invoiceRepo.UpdateStatus(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}
