package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicefy/invoicefy-api/internal/application/billing"
	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/layout"
)

func newPDFUC() (*billing.PDFUseCase, *fakeWriter, *fakeClientRepo) {
	clients := newFakeClientRepo(clientOf(bizA, "c1"), clientOf(bizB, "c2"))
	invoices := newFakeInvoiceRepo(invoiceOf(bizA, "i1", "c1"), invoiceOf(bizB, "i2", "c2"))
	businesses := newFakeBusinessRepo(&entity.Business{
		ID: bizA, Name: "Acme Traders", Address: "45 Park Street, Kolkata",
		GSTNumber: "27AAPFU0939F1ZV",
	})
	guard := billing.NewOwnershipGuard(clients, invoices)
	writer := &fakeWriter{}
	uc := billing.NewPDFUseCase(guard, businesses, clients, layout.NewRenderer(layout.DefaultGeometry()), writer)
	return uc, writer, clients
}

func TestDownload_OK(t *testing.T) {
	uc, writer, _ := newPDFUC()

	pdf, filename, err := uc.Download(context.Background(), bizA, "i1")
	require.NoError(t, err)

	assert.Equal(t, "INV-i1.pdf", filename, "el archivo se nombra por el número de factura")
	assert.Equal(t, 1, writer.calls)
	// una factura de una línea cabe en una página
	assert.Equal(t, []byte{1}, pdf)
}

func TestDownload_FacturaDeOtraEmpresa(t *testing.T) {
	uc, writer, _ := newPDFUC()

	_, _, err := uc.Download(context.Background(), bizA, "i2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, writer.calls, "nada se serializa si el guard rechaza")
}

func TestDownload_ClienteAusenteEsErrorDeRender(t *testing.T) {
	uc, writer, clients := newPDFUC()
	delete(clients.byID, "c1")

	_, _, err := uc.Download(context.Background(), bizA, "i1")

	var rerr *domain.RenderError
	require.ErrorAs(t, err, &rerr, "invariante roto en diagramación, no 404")
	assert.Zero(t, writer.calls)
}

func TestDownload_ClienteCruzadoSeTrataComoAusente(t *testing.T) {
	uc, writer, clients := newPDFUC()
	// corrupción simulada: el cliente de la factura pasa a otra empresa
	clients.byID["c1"].BusinessID = bizB
	defer func() { clients.byID["c1"].BusinessID = bizA }()

	_, _, err := uc.Download(context.Background(), bizA, "i1")

	var rerr *domain.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Zero(t, writer.calls)
}
