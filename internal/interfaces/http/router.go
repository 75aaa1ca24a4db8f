package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/acme-dashboard/internal/application/analytics"
	"github.com/jhoicas/acme-dashboard/internal/application/auth"
	"github.com/jhoicas/acme-dashboard/internal/application/forms"
	"github.com/jhoicas/acme-dashboard/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InvoiceActions  *forms.InvoiceActions
	CustomerActions *forms.CustomerActions
	AuthActions     *forms.AuthActions
	AuthUC          *auth.AuthUseCase
	DashboardUC     *analytics.DashboardUseCase
	InvoiceQuery    *usecase.InvoiceQueryUseCase
	CustomerQuery   *usecase.CustomerQueryUseCase
	Cache           PageCache
	JWTSecret       string
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthActions, deps.AuthUC)
	app.Post("/login", authHandler.Login)
	app.Post("/signup", authHandler.Signup)

	// Dashboard (protegido: requiere sesión)
	dashboard := app.Group("/dashboard", AuthMiddleware(deps.JWTSecret))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Cache)
	dashboard.Get("/", dashboardHandler.Summary)

	// Facturas: lecturas cacheadas por ruta + las seis acciones de formulario
	invoices := dashboard.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceActions, deps.InvoiceQuery, deps.Cache)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/:id", invoiceHandler.GetForEdit)
	invoices.Post("/:id", invoiceHandler.Update)
	invoices.Post("/:id/delete", invoiceHandler.Delete)

	// Clientes
	customers := dashboard.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerActions, deps.CustomerQuery, deps.Cache)
	customers.Get("/", customerHandler.Table)
	customers.Get("/options", customerHandler.Options)
	customers.Post("/", customerHandler.Create)
	customers.Post("/:id", customerHandler.Update)
	customers.Post("/:id/delete", customerHandler.Delete)
}
