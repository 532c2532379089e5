package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invoicefy/invoicefy-api/internal/domain/entity"
	"github.com/invoicefy/invoicefy-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero de la empresa.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// DashboardByBusiness agrega conteos por estado, ingresos cobrados (Paid),
// monto pendiente (todo lo no Paid) y facturas creadas desde la fecha de
// corte. Todo en una sola pasada sobre la tabla.
func (r *AnalyticsRepo) DashboardByBusiness(businessID string, since time.Time) (*repository.DashboardMetrics, error) {
	const query = `
	SELECT
	    COUNT(*)                                                       AS total_invoices,
	    COUNT(*) FILTER (WHERE status = $2)                            AS paid_invoices,
	    COUNT(*) FILTER (WHERE status = $3)                            AS unpaid_invoices,
	    COUNT(*) FILTER (WHERE status = $4)                            AS overdue_invoices,
	    COALESCE(SUM(total) FILTER (WHERE status = $2),  0)            AS total_revenue,
	    COALESCE(SUM(total) FILTER (WHERE status <> $2), 0)            AS outstanding_amount,
	    COUNT(*) FILTER (WHERE created_at >= $5)                       AS created_since
	FROM invoices
	WHERE business_id = $1`

	var m repository.DashboardMetrics
	err := r.pool.QueryRow(context.Background(), query,
		businessID, entity.StatusPaid, entity.StatusUnpaid, entity.StatusOverdue, since,
	).Scan(
		&m.TotalInvoices, &m.PaidInvoices, &m.UnpaidInvoices, &m.OverdueInvoices,
		&m.TotalRevenue, &m.OutstandingAmount, &m.CreatedSince,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard metrics: %w", err)
	}
	return &m, nil
}
