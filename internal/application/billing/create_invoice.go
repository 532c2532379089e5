package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicefy/invoicefy-api/internal/application/dto"
	calc "github.com/invoicefy/invoicefy-api/internal/domain/billing"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

// InvoiceUseCase crea, consulta y lista facturas de una empresa.
type InvoiceUseCase struct {
	guard       *OwnershipGuard
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. nowFn permite fijar el reloj en
// tests; nil usa time.Now.
func NewInvoiceUseCase(
	guard *OwnershipGuard,
	clientRepo repository.ClientRepository,
	invoiceRepo repository.InvoiceRepository,
	nowFn func() time.Time,
) *InvoiceUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &InvoiceUseCase{
		guard:       guard,
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
		now:         nowFn,
	}
}

// ValidateAndCompute convierte las líneas crudas de la petición y calcula los
// totales, o retorna la lista estructurada de errores por campo. Es el único
// punto de entrada de validación que la capa de peticiones necesita: no debe
// re-implementar estas reglas.
func ValidateAndCompute(raw []dto.LineItemRequest, taxRate, discountRate decimal.Decimal) ([]entity.LineItem, calc.Totals, error) {
	items := make([]entity.LineItem, 0, len(raw))
	for _, r := range raw {
		items = append(items, entity.LineItem{
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
		})
	}
	totals, err := calc.Compute(items, taxRate, discountRate)
	if err != nil {
		return nil, calc.Totals{}, err
	}
	return items, totals, nil
}

// Create crea una factura para un cliente de la empresa.
//
// Orden estricto: primero se re-verifica que el cliente referenciado
// pertenezca a la empresa creadora (aunque el ID sea válido, facturar al
// cliente de otro tenant debe fallar como no-encontrado), luego se validan
// líneas y tasas y se calculan los totales, y solo entonces se persiste.
// Ninguna mutación ocurre antes de que toda la validación pase.
func (uc *InvoiceUseCase) Create(ctx context.Context, businessID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if _, err := uc.guard.Client(ctx, businessID, in.ClientID); err != nil {
		return nil, err
	}

	items, totals, err := ValidateAndCompute(in.Items, in.TaxRate, in.DiscountRate)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	inv := &entity.Invoice{
		ID:           uuid.New().String(),
		BusinessID:   businessID,
		ClientID:     in.ClientID,
		Number:       generateNumber(now),
		Items:        items,
		DiscountRate: in.DiscountRate,
		TaxRate:      in.TaxRate,
		Subtotal:     totals.Subtotal,
		TaxAmount:    totals.TaxAmount,
		Total:        totals.Total,
		Status:       entity.StatusUnpaid,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Get obtiene una factura de la empresa (pasa por el guard).
func (uc *InvoiceUseCase) Get(ctx context.Context, businessID, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.guard.Invoice(ctx, businessID, invoiceID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// List lista las facturas de la empresa con paginación. El listado ya viene
// filtrado por tenant desde el repositorio; no expone registros ajenos.
func (uc *InvoiceUseCase) List(ctx context.Context, businessID string, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.invoiceRepo.ListByBusiness(businessID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// generateNumber genera el número único de factura: INV-<epoch millis>.
// La unicidad global la respalda el índice único de la tabla.
func generateNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d", now.UnixMilli())
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	items := make([]dto.LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.LineItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal().Round(2),
		})
	}
	return &dto.InvoiceResponse{
		ID:           inv.ID,
		BusinessID:   inv.BusinessID,
		ClientID:     inv.ClientID,
		Number:       inv.Number,
		Items:        items,
		DiscountRate: inv.DiscountRate,
		TaxRate:      inv.TaxRate,
		Subtotal:     inv.Subtotal,
		TaxAmount:    inv.TaxAmount,
		Total:        inv.Total,
		Status:       inv.Status,
		CreatedAt:    inv.CreatedAt,
	}
}
