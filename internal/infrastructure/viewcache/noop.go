package viewcache

import "context"

// Noop cache nulo: se usa cuando Redis no está configurado. Get nunca
// acierta, Set e Invalidate no hacen nada.
type Noop struct{}

// NewNoop construye el cache nulo.
func NewNoop() Noop { return Noop{} }

func (Noop) Get(ctx context.Context, path string) ([]byte, bool) { return nil, false }
func (Noop) Set(ctx context.Context, path string, body []byte)   {}
func (Noop) Invalidate(ctx context.Context, path string) error   { return nil }
