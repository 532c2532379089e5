package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicefy/invoicefy-api/internal/application/billing"
	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
)

func newStatusUC() (*billing.StatusUseCase, *fakeInvoiceRepo) {
	clients := newFakeClientRepo(clientOf(bizA, "c1"), clientOf(bizB, "c2"))
	invoices := newFakeInvoiceRepo(invoiceOf(bizA, "i1", "c1"), invoiceOf(bizB, "i2", "c2"))
	guard := billing.NewOwnershipGuard(clients, invoices)
	return billing.NewStatusUseCase(guard, invoices, fixedNow), invoices
}

// Cualquier estado puede pasar a cualquier otro: es una corrección del
// operador, no un ciclo estricto hacia adelante.
func TestSetStatus_TransicionesLibres(t *testing.T) {
	uc, _ := newStatusUC()
	ctx := context.Background()

	for _, from := range []string{entity.StatusUnpaid, entity.StatusPaid, entity.StatusOverdue} {
		for _, to := range []string{entity.StatusUnpaid, entity.StatusPaid, entity.StatusOverdue} {
			// fijar estado de partida
			_, err := uc.SetStatus(ctx, bizA, "i1", from)
			require.NoError(t, err)

			resp, err := uc.SetStatus(ctx, bizA, "i1", to)
			require.NoError(t, err, "transición %s → %s debe ser legal", from, to)
			assert.Equal(t, to, resp.Status)
		}
	}
}

func TestSetStatus_EstadoDesconocido(t *testing.T) {
	uc, repo := newStatusUC()
	before := repo.statusWrites

	_, err := uc.SetStatus(context.Background(), bizA, "i1", "Cancelled")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Fields[0].Field)
	assert.Equal(t, before, repo.statusWrites, "estado inválido no debe escribir nada")
}

func TestSetStatus_GuardPrimero(t *testing.T) {
	uc, repo := newStatusUC()

	// bizA intenta mutar la factura de bizB: falla antes de validar el estado
	// y sin escribir, con el mismo ErrNotFound de un ID inexistente.
	_, err := uc.SetStatus(context.Background(), bizA, "i2", "basura")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, repo.statusWrites)
}

// La transición muta solo el estado: totales y fecha de creación quedan
// intactos.
func TestSetStatus_NoTocaTotalesNiFecha(t *testing.T) {
	uc, repo := newStatusUC()
	original := *repo.byID["i1"]

	resp, err := uc.SetStatus(context.Background(), bizA, "i1", entity.StatusPaid)
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(original.Subtotal))
	assert.True(t, resp.Total.Equal(original.Total))
	assert.Equal(t, original.CreatedAt, resp.CreatedAt)

	stored := repo.byID["i1"]
	assert.Equal(t, entity.StatusPaid, stored.Status)
	assert.Equal(t, original.Number, stored.Number, "el número es inmutable")
}
