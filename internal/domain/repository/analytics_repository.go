package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics agrega las métricas del tablero de una empresa.
type DashboardMetrics struct {
	TotalInvoices     int
	PaidInvoices      int
	UnpaidInvoices    int
	OverdueInvoices   int
	TotalRevenue      decimal.Decimal // suma de totales de facturas Paid
	OutstandingAmount decimal.Decimal // suma de totales de facturas no Paid
	CreatedSince      int             // facturas creadas desde la fecha de corte
}

// AnalyticsRepository expone agregados de facturación por empresa.
// Los cálculos se hacen en SQL para no cargar todas las facturas en memoria.
type AnalyticsRepository interface {
	DashboardByBusiness(businessID string, since time.Time) (*DashboardMetrics, error)
}
