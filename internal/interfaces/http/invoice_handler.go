package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acme-dashboard/internal/application/dto"
	"github.com/jhoicas/acme-dashboard/internal/application/forms"
	"github.com/jhoicas/acme-dashboard/internal/application/usecase"
	"github.com/jhoicas/acme-dashboard/internal/domain"
)

// InvoiceHandler maneja las acciones de formulario y lecturas de facturas.
type InvoiceHandler struct {
	actions *forms.InvoiceActions
	query   *usecase.InvoiceQueryUseCase
	cache   PageCache
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(actions *forms.InvoiceActions, query *usecase.InvoiceQueryUseCase, cache PageCache) *InvoiceHandler {
	return &InvoiceHandler{actions: actions, query: query, cache: cache}
}

// List GET /dashboard/invoices?query=&page=1 (cacheada por ruta)
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	return cachedJSON(c, h.cache, func() (any, error) {
		return h.query.ListPage(c.Context(), c.Query("query"), c.QueryInt("page", 1))
	})
}

// GetForEdit GET /dashboard/invoices/:id — factura para precargar el formulario.
func (h *InvoiceHandler) GetForEdit(c *fiber.Ctx) error {
	inv, err := h.query.GetForEdit(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		return err
	}
	return c.JSON(inv)
}

// Create POST /dashboard/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	res := h.actions.Create(c.Context(), formData(c, "customerId", "amount", "status"))
	return renderResult(c, res)
}

// Update POST /dashboard/invoices/:id — la clave va en la ruta, no en el formulario.
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	res := h.actions.Update(c.Context(), c.Params("id"), formData(c, "customerId", "amount", "status"))
	return renderResult(c, res)
}

// Delete POST /dashboard/invoices/:id/delete — un fallo del store se escala
// al error boundary (ErrorHandler); en éxito el caller permanece en la
// página y el listado se sirve recalculado.
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.actions.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
