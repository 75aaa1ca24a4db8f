// Package viewcache implementa el cache de vistas renderizadas con clave por
// ruta. Las mutaciones lo invalidan vía forms.ViewCache; las lecturas lo usan
// como read-through desde la capa HTTP.
package viewcache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/acme-dashboard/pkg/config"
	"github.com/jhoicas/acme-dashboard/pkg/logger"
)

const (
	keyPrefix  = "view:"
	defaultTTL = 15 * time.Minute
)

// RedisCache cache de vistas sobre Redis. Es consultivo: los fallos de Get/Set
// se registran y la petición sigue contra el store.
type RedisCache struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisCache conecta con Redis y verifica la conexión.
func NewRedisCache(cfg config.RedisConfig, log *logger.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{client: client, log: log}, nil
}

// Get devuelve el cuerpo cacheado de la ruta, si existe.
func (c *RedisCache) Get(ctx context.Context, path string) ([]byte, bool) {
	body, err := c.client.Get(ctx, keyPrefix+path).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("path", path).Msg("viewcache: get falló")
		}
		return nil, false
	}
	return body, true
}

// Set guarda el cuerpo renderizado de la ruta con el TTL por defecto.
func (c *RedisCache) Set(ctx context.Context, path string, body []byte) {
	if err := c.client.Set(ctx, keyPrefix+path, body, defaultTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("viewcache: set falló")
	}
}

// Invalidate marca obsoletas la ruta y todas sus variantes con query string
// (p. ej. /dashboard/invoices y /dashboard/invoices?page=2).
func (c *RedisCache) Invalidate(ctx context.Context, path string) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+path+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("viewcache: scan %s: %w", path, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("viewcache: del %s: %w", path, err)
	}
	return nil
}

// Close cierra la conexión con Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
