package repository

import (
	"context"
	"time"

	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
)

// CardTotals totales para las tarjetas del dashboard. Montos en centavos.
type CardTotals struct {
	InvoiceCount  int64
	CustomerCount int64
	TotalPaid     int64
	TotalPending  int64
}

// LatestInvoice fila del widget de últimas facturas (join con customers).
type LatestInvoice struct {
	ID       string
	Name     string
	Email    string
	ImageURL *string
	Amount   int64
}

// InvoiceRow fila de la tabla de facturas con los datos del cliente.
type InvoiceRow struct {
	ID         string
	CustomerID string
	Name       string
	Email      string
	ImageURL   *string
	Amount     int64
	Date       time.Time
	Status     string
}

// CustomerRow fila de la tabla de clientes con agregados de facturación.
type CustomerRow struct {
	ID            string
	Name          string
	Email         string
	ImageURL      *string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

// AnalyticsRepository consultas de solo lectura que alimentan el dashboard
// y los listados (DIP). La implementación vive en infrastructure.
type AnalyticsRepository interface {
	GetCardTotals(ctx context.Context) (CardTotals, error)
	GetMonthlyRevenue(ctx context.Context) ([]entity.Revenue, error)
	GetLatestInvoices(ctx context.Context, limit int) ([]LatestInvoice, error)

	// GetFilteredInvoices busca por nombre/email del cliente, monto, fecha o
	// estado (ILIKE), ordenado por fecha descendente, con paginación.
	GetFilteredInvoices(ctx context.Context, query string, limit, offset int) ([]InvoiceRow, error)
	CountFilteredInvoices(ctx context.Context, query string) (int64, error)

	// GetCustomerTable devuelve clientes (filtrados por nombre/email) con
	// número de facturas y totales pendiente/pagado en centavos.
	GetCustomerTable(ctx context.Context, query string) ([]CustomerRow, error)
}
