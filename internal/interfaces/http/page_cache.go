package http

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// PageCache vista renderizada cacheada por ruta. Las implementaciones viven
// en infrastructure/viewcache; las mutaciones la invalidan por ruta.
type PageCache interface {
	Get(ctx context.Context, path string) ([]byte, bool)
	Set(ctx context.Context, path string, body []byte)
}

// cachedJSON sirve la vista desde el cache si está fresca; si no, ejecuta
// fetch, guarda el JSON resultante bajo la clave de la ruta y lo responde.
func cachedJSON(c *fiber.Ctx, cache PageCache, fetch func() (any, error)) error {
	key := cacheKey(c)
	if body, ok := cache.Get(c.Context(), key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(body)
	}
	data, err := fetch()
	if err != nil {
		return err
	}
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	cache.Set(c.Context(), key, body)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// cacheKey clave de la vista: ruta más query string. Comparte prefijo con la
// ruta pelada, de modo que Invalidate(ruta) barre también las variantes
// paginadas/filtradas.
func cacheKey(c *fiber.Ctx) string {
	key := c.Path()
	if qs := c.Request().URI().QueryString(); len(qs) > 0 {
		key += "?" + string(qs)
	}
	return key
}
