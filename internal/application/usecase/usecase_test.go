package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicefy/invoicefy-api/internal/application/dto"
	"github.com/invoicefy/invoicefy-api/internal/application/usecase"
	"github.com/invoicefy/invoicefy-api/internal/domain"
	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

type fakeBusinessRepo struct {
	byID map[string]*entity.Business
}

func (r *fakeBusinessRepo) Create(b *entity.Business) error { r.byID[b.ID] = b; return nil }
func (r *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	return r.byID[id], nil
}
func (r *fakeBusinessRepo) GetByGSTNumber(string) (*entity.Business, error) { return nil, nil }
func (r *fakeBusinessRepo) Update(b *entity.Business) error                 { r.byID[b.ID] = b; return nil }

type fakeAnalyticsRepo struct {
	metrics   *repository.DashboardMetrics
	lastSince time.Time
}

func (r *fakeAnalyticsRepo) DashboardByBusiness(_ string, since time.Time) (*repository.DashboardMetrics, error) {
	r.lastSince = since
	return r.metrics, nil
}

func seededBusiness() *fakeBusinessRepo {
	return &fakeBusinessRepo{byID: map[string]*entity.Business{
		"b1": {
			ID: "b1", Name: "Acme Traders", GSTNumber: "27AAPFU0939F1ZV",
			Address: "45 Park Street, Kolkata",
		},
	}}
}

func TestGetProfile(t *testing.T) {
	uc := usecase.NewBusinessUseCase(seededBusiness())

	resp, err := uc.GetProfile(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders", resp.Name)
	assert.Equal(t, "27AAPFU0939F1ZV", resp.GSTNumber)

	_, err = uc.GetProfile(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfile_GSTInmutable(t *testing.T) {
	repo := seededBusiness()
	uc := usecase.NewBusinessUseCase(repo)

	resp, err := uc.UpdateProfile(context.Background(), "b1", dto.UpdateBusinessRequest{
		Name: "Acme Traders Pvt Ltd", Address: "Nueva dirección",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Traders Pvt Ltd", resp.Name)
	assert.Equal(t, "27AAPFU0939F1ZV", repo.byID["b1"].GSTNumber, "el GSTIN nunca cambia")
}

func TestUpdateProfile_NombreObligatorio(t *testing.T) {
	uc := usecase.NewBusinessUseCase(seededBusiness())

	_, err := uc.UpdateProfile(context.Background(), "b1", dto.UpdateBusinessRequest{Address: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDashboard_VentanaDe30Dias(t *testing.T) {
	now := time.Date(2025, 11, 29, 12, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{metrics: &repository.DashboardMetrics{
		TotalInvoices: 5, PaidInvoices: 2, UnpaidInvoices: 2, OverdueInvoices: 1,
		TotalRevenue:      decimal.RequireFromString("1180.125"),
		OutstandingAmount: decimal.RequireFromString("354.375"),
		CreatedSince:      3,
	}}
	uc := usecase.NewAnalyticsUseCase(repo, func() time.Time { return now })

	resp, err := uc.Dashboard(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, now.AddDate(0, 0, -30), repo.lastSince)
	assert.Equal(t, 5, resp.TotalInvoices)
	assert.Equal(t, 3, resp.InvoicesCreatedLast30Days)
	// los montos agregados salen redondeados a 2 decimales, mitad hacia afuera
	assert.Equal(t, "1180.13", resp.TotalRevenue.String())
	assert.Equal(t, "354.38", resp.OutstandingAmount.String())
}
