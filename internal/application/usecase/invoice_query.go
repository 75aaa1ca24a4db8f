// Package usecase contiene los casos de uso de consulta de los listados.
package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/acme-dashboard/internal/application/dto"
	"github.com/jhoicas/acme-dashboard/internal/domain"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
	"github.com/jhoicas/acme-dashboard/pkg/currency"
)

const invoicesPerPage = 6 // tamaño fijo de página de la tabla de facturas

// InvoiceQueryUseCase lecturas de la tabla de facturas y del formulario de edición.
type InvoiceQueryUseCase struct {
	invoiceRepo   repository.InvoiceRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewInvoiceQueryUseCase construye el caso de uso.
func NewInvoiceQueryUseCase(invoiceRepo repository.InvoiceRepository, analyticsRepo repository.AnalyticsRepository) *InvoiceQueryUseCase {
	return &InvoiceQueryUseCase{invoiceRepo: invoiceRepo, analyticsRepo: analyticsRepo}
}

// ListPage devuelve la página `page` (1-based) de la tabla filtrada por `query`,
// más el total de páginas para el paginador.
func (uc *InvoiceQueryUseCase) ListPage(ctx context.Context, query string, page int) (*dto.InvoicePageDTO, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * invoicesPerPage

	rows, err := uc.analyticsRepo.GetFilteredInvoices(ctx, query, invoicesPerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("invoices: list page: %w", err)
	}
	total, err := uc.analyticsRepo.CountFilteredInvoices(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("invoices: count: %w", err)
	}

	out := &dto.InvoicePageDTO{
		Invoices:   make([]dto.InvoiceRowDTO, 0, len(rows)),
		TotalPages: (total + invoicesPerPage - 1) / invoicesPerPage,
	}
	for _, r := range rows {
		out.Invoices = append(out.Invoices, dto.InvoiceRowDTO{
			ID:       r.ID,
			Name:     r.Name,
			Email:    r.Email,
			ImageURL: r.ImageURL,
			Amount:   currency.FormatCents(r.Amount),
			Date:     r.Date.Format("2006-01-02"),
			Status:   r.Status,
		})
	}
	return out, nil
}

// GetForEdit devuelve la factura con amount en unidades mayores, lista para
// precargar el formulario de edición. domain.ErrNotFound si no existe.
func (uc *InvoiceQueryUseCase) GetForEdit(ctx context.Context, id string) (*dto.InvoiceFormDTO, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("invoices: get %s: %w", id, err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceFormDTO{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     decimal.NewFromInt(inv.Amount).Shift(-2).String(),
		Status:     inv.Status,
	}, nil
}
