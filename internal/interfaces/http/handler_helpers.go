package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acme-dashboard/internal/application/forms"
)

// formData arma el FormData de una acción con los campos indicados.
// Un campo no enviado queda como "" (el esquema lo trata como faltante).
func formData(c *fiber.Ctx, fields ...string) forms.FormData {
	form := make(forms.FormData, len(fields))
	for _, f := range fields {
		form[f] = c.FormValue(f)
	}
	return form
}

// renderResult traduce el Result de una acción create/update: éxito es 303
// hacia el listado; fallo es 422 con el State para repintar el formulario.
func renderResult(c *fiber.Ctx, res forms.Result) error {
	if res.Succeeded() {
		return c.Redirect(res.RedirectTo, fiber.StatusSeeOther)
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(res.State)
}
