// Package analytics contiene el caso de uso del resumen del dashboard.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/acme-dashboard/internal/application/dto"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
	"github.com/jhoicas/acme-dashboard/pkg/currency"
)

const dashboardLatestInvoices = 5 // filas del widget de últimas facturas

// DashboardUseCase genera el resumen del dashboard: tarjetas, gráfico de
// ingresos y últimas facturas.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	totals, err := uc.analyticsRepo.GetCardTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: card totals: %w", err)
	}
	revenue, err := uc.analyticsRepo.GetMonthlyRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: monthly revenue: %w", err)
	}
	latest, err := uc.analyticsRepo.GetLatestInvoices(ctx, dashboardLatestInvoices)
	if err != nil {
		return nil, fmt.Errorf("dashboard: latest invoices: %w", err)
	}

	out := &dto.DashboardSummaryDTO{
		Cards: dto.CardDTO{
			NumberOfInvoices:  totals.InvoiceCount,
			NumberOfCustomers: totals.CustomerCount,
			TotalPaid:         currency.FormatCents(totals.TotalPaid),
			TotalPending:      currency.FormatCents(totals.TotalPending),
		},
		Revenue:        make([]dto.RevenueDTO, 0, len(revenue)),
		LatestInvoices: make([]dto.LatestInvoiceDTO, 0, len(latest)),
	}
	for _, r := range revenue {
		out.Revenue = append(out.Revenue, dto.RevenueDTO{Month: r.Month, Revenue: r.Revenue})
	}
	for _, inv := range latest {
		out.LatestInvoices = append(out.LatestInvoices, dto.LatestInvoiceDTO{
			ID:       inv.ID,
			Name:     inv.Name,
			Email:    inv.Email,
			ImageURL: inv.ImageURL,
			Amount:   currency.FormatCents(inv.Amount),
		})
	}
	return out, nil
}
