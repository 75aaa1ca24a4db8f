package forms

import (
	"context"

	"github.com/jhoicas/acme-dashboard/pkg/logger"
)

// Rutas de los listados; son también las claves del cache de vistas.
const (
	InvoiceListPath  = "/dashboard/invoices"
	CustomerListPath = "/dashboard/customers"
)

// ViewCache marca una vista renderizada como obsoleta para que la próxima
// lectura la recalcule desde el store. Es consultivo: un fallo aquí se
// registra y no revierte la mutación ya confirmada.
type ViewCache interface {
	Invalidate(ctx context.Context, path string) error
}

// mutation describe una instancia del patrón validar-ejecutar-reaccionar.
type mutation struct {
	schema     Schema
	missingMsg string // resumen cuando la validación falla
	storeMsg   string // mensaje cuando el store rechaza la sentencia
	listPath   string // vista de listado a invalidar y destino del redirect
	exec       func(ctx context.Context) error
}

// run ejecuta el ciclo completo de una acción create/update:
//
//	Received → Validating → {Invalid | Valid} → Executing →
//	{StoreError | Committed} → Reacting (invalidate + redirect) → Done
//
// Los fallos de validación y de store se devuelven como State, nunca se
// lanzan; si la validación falla no se emite ninguna sentencia. No hay
// reintentos: un fallo se reporta una sola vez y el caller decide.
func run(ctx context.Context, log *logger.Logger, cache ViewCache, m mutation, form FormData) Result {
	if errs := m.schema.Validate(form); len(errs) > 0 {
		return fail(State{Errors: errs, Message: m.missingMsg})
	}
	if err := m.exec(ctx); err != nil {
		log.Error().Err(err).Str("path", m.listPath).Msg("mutación rechazada por el store")
		return fail(State{Message: m.storeMsg})
	}
	invalidate(ctx, log, cache, m.listPath)
	return redirect(m.listPath)
}

func invalidate(ctx context.Context, log *logger.Logger, cache ViewCache, path string) {
	if err := cache.Invalidate(ctx, path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("no se pudo invalidar el cache de la vista")
	}
}
