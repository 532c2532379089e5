package usecase

import (
	"context"
	"time"

	"github.com/invoicefy/invoicefy-api/internal/application/dto"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

// AnalyticsUseCase métricas del tablero de la empresa: conteos por estado de
// pago, ingresos cobrados (Paid) y monto pendiente (no Paid).
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso. nowFn nil usa time.Now.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository, nowFn func() time.Time) *AnalyticsUseCase {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &AnalyticsUseCase{repo: repo, now: nowFn}
}

// Dashboard retorna las métricas de la empresa autenticada. La ventana de
// "facturas recientes" son los últimos 30 días.
func (uc *AnalyticsUseCase) Dashboard(_ context.Context, businessID string) (*dto.DashboardResponse, error) {
	since := uc.now().AddDate(0, 0, -30)
	m, err := uc.repo.DashboardByBusiness(businessID, since)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalInvoices:             m.TotalInvoices,
		PaidInvoices:              m.PaidInvoices,
		UnpaidInvoices:            m.UnpaidInvoices,
		OverdueInvoices:           m.OverdueInvoices,
		TotalRevenue:              m.TotalRevenue.Round(2),
		OutstandingAmount:         m.OutstandingAmount.Round(2),
		InvoicesCreatedLast30Days: m.CreatedSince,
	}, nil
}
