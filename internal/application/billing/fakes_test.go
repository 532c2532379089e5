package billing_test

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/layout"
)

// Repos en memoria para los tests de casos de uso. Mismo contrato que los
// adaptadores de postgres: ausente = (nil, nil), errores solo por fallas
// simuladas de infraestructura.

type fakeClientRepo struct {
	byID    map[string]*entity.Client
	failGet error
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	r := &fakeClientRepo{byID: make(map[string]*entity.Client)}
	for _, c := range clients {
		r.byID[c.ID] = c
	}
	return r
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	if r.failGet != nil {
		return nil, r.failGet
	}
	return r.byID[id], nil
}

func (r *fakeClientRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.byID {
		if c.BusinessID == businessID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

type fakeInvoiceRepo struct {
	byID         map[string]*entity.Invoice
	created      []*entity.Invoice
	statusWrites int
}

func newFakeInvoiceRepo(invoices ...*entity.Invoice) *fakeInvoiceRepo {
	r := &fakeInvoiceRepo{byID: make(map[string]*entity.Invoice)}
	for _, inv := range invoices {
		r.byID[inv.ID] = inv
	}
	return r
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	for _, existing := range r.byID {
		if existing.Number == inv.Number {
			return errors.New("duplicate invoice number")
		}
	}
	r.byID[inv.ID] = inv
	r.created = append(r.created, inv)
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.byID[id], nil
}

func (r *fakeInvoiceRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.byID {
		if inv.BusinessID == businessID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(inv *entity.Invoice) error {
	r.statusWrites++
	r.byID[inv.ID] = inv
	return nil
}

type fakeBusinessRepo struct {
	byID map[string]*entity.Business
}

func newFakeBusinessRepo(businesses ...*entity.Business) *fakeBusinessRepo {
	r := &fakeBusinessRepo{byID: make(map[string]*entity.Business)}
	for _, b := range businesses {
		r.byID[b.ID] = b
	}
	return r
}

func (r *fakeBusinessRepo) Create(b *entity.Business) error { r.byID[b.ID] = b; return nil }
func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.byID[id], nil
}
func (r *fakeBusinessRepo) GetByGSTNumber(gst string) (*entity.Business, error) {
	for _, b := range r.byID {
		if b.GSTNumber == gst {
			return b, nil
		}
	}
	return nil, nil
}
func (r *fakeBusinessRepo) Update(b *entity.Business) error { r.byID[b.ID] = b; return nil }

// fakeWriter serializa páginas de forma trivial para verificar el cableado
// renderer → writer sin tocar maroto.
type fakeWriter struct {
	calls int
}

func (w *fakeWriter) Write(_ context.Context, pages []layout.Page) ([]byte, error) {
	w.calls++
	return []byte{byte(len(pages))}, nil
}

// ── fixtures ──────────────────────────────────────────────────────────────────

const (
	bizA = "business-a"
	bizB = "business-b"
)

func clientOf(business, id string) *entity.Client {
	return &entity.Client{
		ID: id, BusinessID: business,
		Name: "Ravi Kumar", Email: "ravi@example.com",
		Phone: "9876543210", Address: "12 MG Road, Bengaluru",
	}
}

func invoiceOf(business, id, clientID string) *entity.Invoice {
	return &entity.Invoice{
		ID: id, BusinessID: business, ClientID: clientID,
		Number: "INV-" + id,
		Items: []entity.LineItem{{
			Description: "Servicio",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.NewFromInt(50),
		}},
		DiscountRate: decimal.Zero,
		TaxRate:      decimal.Zero,
		Subtotal:     decimal.NewFromInt(100),
		TaxAmount:    decimal.Zero,
		Total:        decimal.NewFromInt(100),
		Status:       entity.StatusUnpaid,
		CreatedAt:    time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}
