package forms

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
	"github.com/jhoicas/acme-dashboard/pkg/logger"
)

// Resúmenes de fallo de las acciones de factura.
const (
	msgInvoiceMissingCreate = "Missing Fields. Failed to Create Invoice."
	msgInvoiceMissingUpdate = "Missing Fields. Failed to Update Invoice."
	msgInvoiceStoreCreate   = "Database Error: Failed to Create Invoice."
	msgInvoiceStoreUpdate   = "Database Error: Failed to Update Invoice."
)

// InvoiceActions acciones de formulario sobre facturas.
type InvoiceActions struct {
	repo  repository.InvoiceRepository
	cache ViewCache
	log   *logger.Logger
	now   func() time.Time
}

// NewInvoiceActions construye las acciones con su repo y el cache de vistas.
func NewInvoiceActions(repo repository.InvoiceRepository, cache ViewCache, log *logger.Logger) *InvoiceActions {
	return &InvoiceActions{repo: repo, cache: cache, log: log, now: time.Now}
}

// Create valida el formulario y crea la factura. El servidor asigna id y
// date (fecha de creación); amount se convierte a centavos de forma exacta.
func (a *InvoiceActions) Create(ctx context.Context, form FormData) Result {
	return run(ctx, a.log, a.cache, mutation{
		schema:     createInvoiceSchema,
		missingMsg: msgInvoiceMissingCreate,
		storeMsg:   msgInvoiceStoreCreate,
		listPath:   InvoiceListPath,
		exec: func(ctx context.Context) error {
			return a.repo.Create(ctx, &entity.Invoice{
				ID:         uuid.New().String(),
				CustomerID: form.Get("customerId"),
				Amount:     amountToCents(form.Get("amount")),
				Status:     form.Get("status"),
				Date:       a.now().Truncate(24 * time.Hour),
			})
		},
	}, form)
}

// Update valida el formulario y reemplaza por completo los campos mutables
// de la factura indicada. La clave llega fuera del cuerpo del formulario y
// date no se modifica.
func (a *InvoiceActions) Update(ctx context.Context, id string, form FormData) Result {
	return run(ctx, a.log, a.cache, mutation{
		schema:     updateInvoiceSchema,
		missingMsg: msgInvoiceMissingUpdate,
		storeMsg:   msgInvoiceStoreUpdate,
		listPath:   InvoiceListPath,
		exec: func(ctx context.Context) error {
			return a.repo.Update(ctx, &entity.Invoice{
				ID:         id,
				CustomerID: form.Get("customerId"),
				Amount:     amountToCents(form.Get("amount")),
				Status:     form.Get("status"),
			})
		},
	}, form)
}

// Delete borra la factura (hard delete). A diferencia de create/update, un
// fallo del store NO se convierte en State: se escala como error para que
// lo maneje el error boundary del caller. En éxito solo invalida el cache
// del listado; el caller permanece en la página actual.
func (a *InvoiceActions) Delete(ctx context.Context, id string) error {
	if err := a.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete invoice %s: %w", id, err)
	}
	invalidate(ctx, a.log, a.cache, InvoiceListPath)
	return nil
}
