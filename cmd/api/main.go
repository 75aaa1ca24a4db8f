package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/acme-dashboard/internal/application/analytics"
	"github.com/jhoicas/acme-dashboard/internal/application/auth"
	"github.com/jhoicas/acme-dashboard/internal/application/forms"
	"github.com/jhoicas/acme-dashboard/internal/application/usecase"
	"github.com/jhoicas/acme-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/acme-dashboard/internal/infrastructure/viewcache"
	httpRouter "github.com/jhoicas/acme-dashboard/internal/interfaces/http"
	"github.com/jhoicas/acme-dashboard/pkg/config"
	"github.com/jhoicas/acme-dashboard/pkg/logger"
)

// pageCache unión de lo que consumen lecturas (Get/Set) y mutaciones (Invalidate).
type pageCache interface {
	httpRouter.PageCache
	forms.ViewCache
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Cache de vistas: Redis si está configurado, si no un cache nulo.
	var cache pageCache = viewcache.NewNoop()
	if cfg.Redis.Addr != "" {
		redisCache, err := viewcache.NewRedisCache(cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		cache = redisCache
	}

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	invoiceActions := forms.NewInvoiceActions(invoiceRepo, cache, log)
	customerActions := forms.NewCustomerActions(customerRepo, cache, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	authActions := forms.NewAuthActions(authUC)

	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)
	invoiceQuery := usecase.NewInvoiceQueryUseCase(invoiceRepo, analyticsRepo)
	customerQuery := usecase.NewCustomerQueryUseCase(customerRepo, analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.NewErrorHandler(log),
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceActions:  invoiceActions,
		CustomerActions: customerActions,
		AuthActions:     authActions,
		AuthUC:          authUC,
		DashboardUC:     dashboardUC,
		InvoiceQuery:    invoiceQuery,
		CustomerQuery:   customerQuery,
		Cache:           cache,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
