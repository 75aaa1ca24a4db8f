package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/acme-dashboard/internal/application/dto"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
	"github.com/jhoicas/acme-dashboard/pkg/currency"
)

// CustomerQueryUseCase lecturas de la tabla de clientes y del selector de
// cliente del formulario de factura.
type CustomerQueryUseCase struct {
	customerRepo  repository.CustomerRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewCustomerQueryUseCase construye el caso de uso.
func NewCustomerQueryUseCase(customerRepo repository.CustomerRepository, analyticsRepo repository.AnalyticsRepository) *CustomerQueryUseCase {
	return &CustomerQueryUseCase{customerRepo: customerRepo, analyticsRepo: analyticsRepo}
}

// Table devuelve los clientes filtrados por `query` con sus agregados de
// facturación formateados.
func (uc *CustomerQueryUseCase) Table(ctx context.Context, query string) ([]dto.CustomerRowDTO, error) {
	rows, err := uc.analyticsRepo.GetCustomerTable(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("customers: table: %w", err)
	}
	out := make([]dto.CustomerRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CustomerRowDTO{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			ImageURL:      r.ImageURL,
			TotalInvoices: r.TotalInvoices,
			TotalPending:  currency.FormatCents(r.TotalPending),
			TotalPaid:     currency.FormatCents(r.TotalPaid),
		})
	}
	return out, nil
}

// Options devuelve id y nombre de todos los clientes, ordenados por nombre.
func (uc *CustomerQueryUseCase) Options(ctx context.Context) ([]dto.CustomerOptionDTO, error) {
	list, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("customers: options: %w", err)
	}
	out := make([]dto.CustomerOptionDTO, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerOptionDTO{ID: c.ID, Name: c.Name})
	}
	return out, nil
}
