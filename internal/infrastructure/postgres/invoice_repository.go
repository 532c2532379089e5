package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Las líneas viven como JSONB en la misma fila: se leen y escriben siempre
// como un todo, nunca línea por línea.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura completa, líneas incluidas.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	items, err := json.Marshal(invoice.Items)
	if err != nil {
		return fmt.Errorf("marshal invoice items: %w", err)
	}
	query := `
		INSERT INTO invoices (id, business_id, client_id, invoice_number, items,
			discount_rate, tax_rate, subtotal, tax_amount, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.BusinessID, invoice.ClientID, invoice.Number, items,
		invoice.DiscountRate, invoice.TaxRate, invoice.Subtotal, invoice.TaxAmount,
		invoice.Total, invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

const invoiceColumns = `id, business_id, client_id, invoice_number, items,
	discount_rate, tax_rate, subtotal, tax_amount, total, status, created_at, updated_at`

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByBusiness lista facturas de la empresa, más recientes primero.
func (r *InvoiceRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + `
		FROM invoices WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// UpdateStatus persiste únicamente el cambio de estado de pago. Totales,
// líneas y created_at nunca se reescriben.
func (r *InvoiceRepo) UpdateStatus(invoice *entity.Invoice) error {
	query := `UPDATE invoices SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// scanInvoice llena una factura desde una fila con invoiceColumns.
func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var items []byte
	err := row.Scan(
		&inv.ID, &inv.BusinessID, &inv.ClientID, &inv.Number, &items,
		&inv.DiscountRate, &inv.TaxRate, &inv.Subtotal, &inv.TaxAmount,
		&inv.Total, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal invoice items: %w", err)
	}
	return &inv, nil
}
