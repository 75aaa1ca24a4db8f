package forms

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
	"github.com/jhoicas/acme-dashboard/pkg/logger"
)

// Resúmenes de fallo de las acciones de cliente.
const (
	msgCustomerMissingCreate = "Missing Fields. Failed to Create Customer."
	msgCustomerMissingUpdate = "Missing Fields. Failed to Update Customer."
	msgCustomerStoreCreate   = "Database Error: Failed to Create Customer."
	msgCustomerStoreUpdate   = "Database Error: Failed to Update Customer."
)

// CustomerActions acciones de formulario sobre clientes.
type CustomerActions struct {
	repo  repository.CustomerRepository
	cache ViewCache
	log   *logger.Logger
}

// NewCustomerActions construye las acciones con su repo y el cache de vistas.
func NewCustomerActions(repo repository.CustomerRepository, cache ViewCache, log *logger.Logger) *CustomerActions {
	return &CustomerActions{repo: repo, cache: cache, log: log}
}

// Create valida el formulario y crea el cliente. image_url ausente o vacío
// se persiste como NULL, nunca como string vacío.
func (a *CustomerActions) Create(ctx context.Context, form FormData) Result {
	return run(ctx, a.log, a.cache, mutation{
		schema:     createCustomerSchema,
		missingMsg: msgCustomerMissingCreate,
		storeMsg:   msgCustomerStoreCreate,
		listPath:   CustomerListPath,
		exec: func(ctx context.Context) error {
			return a.repo.Create(ctx, &entity.Customer{
				ID:       uuid.New().String(),
				Name:     form.Get("name"),
				Email:    form.Get("email"),
				ImageURL: optionalURL(form),
			})
		},
	}, form)
}

// Update valida el formulario y reemplaza por completo los campos mutables
// del cliente indicado.
func (a *CustomerActions) Update(ctx context.Context, id string, form FormData) Result {
	return run(ctx, a.log, a.cache, mutation{
		schema:     updateCustomerSchema,
		missingMsg: msgCustomerMissingUpdate,
		storeMsg:   msgCustomerStoreUpdate,
		listPath:   CustomerListPath,
		exec: func(ctx context.Context) error {
			return a.repo.Update(ctx, &entity.Customer{
				ID:       id,
				Name:     form.Get("name"),
				Email:    form.Get("email"),
				ImageURL: optionalURL(form),
			})
		},
	}, form)
}

// Delete borra el cliente (hard delete). Un cliente con facturas
// dependientes falla en el store por la FK y el error se escala al error
// boundary del caller; en éxito solo se invalida el cache del listado.
func (a *CustomerActions) Delete(ctx context.Context, id string) error {
	if err := a.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	invalidate(ctx, a.log, a.cache, CustomerListPath)
	return nil
}

func optionalURL(form FormData) *string {
	if v := form.Get("image_url"); v != "" {
		return &v
	}
	return nil
}
