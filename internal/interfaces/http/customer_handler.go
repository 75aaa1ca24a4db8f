package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acme-dashboard/internal/application/forms"
	"github.com/jhoicas/acme-dashboard/internal/application/usecase"
)

// CustomerHandler maneja las acciones de formulario y lecturas de clientes.
type CustomerHandler struct {
	actions *forms.CustomerActions
	query   *usecase.CustomerQueryUseCase
	cache   PageCache
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(actions *forms.CustomerActions, query *usecase.CustomerQueryUseCase, cache PageCache) *CustomerHandler {
	return &CustomerHandler{actions: actions, query: query, cache: cache}
}

// Table GET /dashboard/customers?query= (cacheada por ruta)
func (h *CustomerHandler) Table(c *fiber.Ctx) error {
	return cachedJSON(c, h.cache, func() (any, error) {
		return h.query.Table(c.Context(), c.Query("query"))
	})
}

// Options GET /dashboard/customers/options — selector del formulario de factura.
func (h *CustomerHandler) Options(c *fiber.Ctx) error {
	out, err := h.query.Options(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create POST /dashboard/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	res := h.actions.Create(c.Context(), formData(c, "name", "email", "image_url"))
	return renderResult(c, res)
}

// Update POST /dashboard/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	res := h.actions.Update(c.Context(), c.Params("id"), formData(c, "name", "email", "image_url"))
	return renderResult(c, res)
}

// Delete POST /dashboard/customers/:id/delete — si el cliente tiene facturas
// la FK del store rechaza el borrado y el error se escala al boundary.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.actions.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
