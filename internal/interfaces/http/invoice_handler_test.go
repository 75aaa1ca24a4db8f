package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/acme-dashboard/internal/application/forms"
	"github.com/jhoicas/acme-dashboard/internal/application/usecase"
	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
	apphttp "github.com/jhoicas/acme-dashboard/internal/interfaces/http"
	"github.com/jhoicas/acme-dashboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memInvoiceRepo repositorio de facturas en memoria con errores inyectables.
type memInvoiceRepo struct {
	mu       sync.Mutex
	byID     map[string]entity.Invoice
	forceErr error
}

func newMemInvoiceRepo() *memInvoiceRepo {
	return &memInvoiceRepo{byID: map[string]entity.Invoice{}}
}

func (r *memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceErr != nil {
		return r.forceErr
	}
	r.byID[inv.ID] = *inv
	return nil
}

func (r *memInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceErr != nil {
		return nil, r.forceErr
	}
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *memInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceErr != nil {
		return r.forceErr
	}
	prev, ok := r.byID[inv.ID]
	if !ok {
		return nil
	}
	prev.CustomerID = inv.CustomerID
	prev.Amount = inv.Amount
	prev.Status = inv.Status
	r.byID[inv.ID] = prev
	return nil
}

func (r *memInvoiceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forceErr != nil {
		return r.forceErr
	}
	delete(r.byID, id)
	return nil
}

func (r *memInvoiceRepo) all() []entity.Invoice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Invoice, 0, len(r.byID))
	for _, inv := range r.byID {
		out = append(out, inv)
	}
	return out
}

// memAnalytics cubre solo los métodos que la tabla de facturas usa y cuenta
// cuántas veces se consultó (para verificar el cache de vistas).
type memAnalytics struct {
	mu        sync.Mutex
	listCalls int
	rows      []repository.InvoiceRow
}

func (a *memAnalytics) GetCardTotals(context.Context) (repository.CardTotals, error) {
	return repository.CardTotals{}, nil
}

func (a *memAnalytics) GetMonthlyRevenue(context.Context) ([]entity.Revenue, error) {
	return nil, nil
}

func (a *memAnalytics) GetLatestInvoices(context.Context, int) ([]repository.LatestInvoice, error) {
	return nil, nil
}

func (a *memAnalytics) GetFilteredInvoices(_ context.Context, _ string, _, _ int) ([]repository.InvoiceRow, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listCalls++
	return a.rows, nil
}

func (a *memAnalytics) CountFilteredInvoices(context.Context, string) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return int64(len(a.rows)), nil
}

func (a *memAnalytics) GetCustomerTable(context.Context, string) ([]repository.CustomerRow, error) {
	return nil, nil
}

// memViewCache cache de vistas en memoria: PageCache para las lecturas y
// ViewCache (Invalidate por prefijo de ruta) para las mutaciones.
type memViewCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemViewCache() *memViewCache {
	return &memViewCache{entries: map[string][]byte{}}
}

func (c *memViewCache) Get(_ context.Context, path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.entries[path]
	return body, ok
}

func (c *memViewCache) Set(_ context.Context, path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = body
}

func (c *memViewCache) Invalidate(_ context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, path) {
			delete(c.entries, key)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado de la aplicación de test
// ──────────────────────────────────────────────────────────────────────────────

type invoiceTestApp struct {
	app       *fiber.App
	repo      *memInvoiceRepo
	analytics *memAnalytics
	cache     *memViewCache
}

// buildInvoiceApp monta las rutas de facturas igual que el router real, con
// los fakes en memoria y el error boundary de la aplicación.
func buildInvoiceApp() *invoiceTestApp {
	log := logger.Nop()
	repo := newMemInvoiceRepo()
	analytics := &memAnalytics{}
	cache := newMemViewCache()

	actions := forms.NewInvoiceActions(repo, cache, log)
	query := usecase.NewInvoiceQueryUseCase(repo, analytics)
	handler := apphttp.NewInvoiceHandler(actions, query, cache)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorHandler(log)})
	g := app.Group("/dashboard", apphttp.AuthMiddleware(testJWTSecret))
	inv := g.Group("/invoices")
	inv.Get("/", handler.List)
	inv.Post("/", handler.Create)
	inv.Get("/:id", handler.GetForEdit)
	inv.Post("/:id", handler.Update)
	inv.Post("/:id/delete", handler.Delete)

	return &invoiceTestApp{app: app, repo: repo, analytics: analytics, cache: cache}
}

// postForm envía un POST application/x-www-form-urlencoded autenticado.
func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+sessionToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// getJSON envía un GET autenticado.
func getJSON(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de las acciones de factura vía HTTP
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: create válido → 303 hacia el listado y la factura queda persistida
// con el monto en centavos.
func TestInvoiceHTTP_CreateValido_Redirige303(t *testing.T) {
	ta := buildInvoiceApp()

	resp := postForm(t, ta.app, "/dashboard/invoices/", url.Values{
		"customerId": {"3958dc9e-712f-4377-85e9-fec4b6a6442a"},
		"amount":     {"49.99"},
		"status":     {"pending"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, forms.InvoiceListPath, resp.Header.Get("Location"))

	invoices := ta.repo.all()
	require.Len(t, invoices, 1, "debe persistirse exactamente una factura")
	assert.Equal(t, int64(4999), invoices[0].Amount, "el monto se guarda en centavos")
	assert.Equal(t, "pending", invoices[0].Status)
}

// Caso 2: update sin cliente → 422 con el State exacto para repintar el
// formulario; nada se persiste.
func TestInvoiceHTTP_UpdateSinCliente_Retorna422(t *testing.T) {
	ta := buildInvoiceApp()
	ta.repo.byID["inv-1"] = entity.Invoice{ID: "inv-1", CustomerID: "c-1", Amount: 100, Status: "pending"}

	resp := postForm(t, ta.app, "/dashboard/invoices/inv-1", url.Values{
		"customerId": {""},
		"amount":     {"20.00"},
		"status":     {"paid"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var state forms.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, "Missing Fields. Failed to Update Invoice.", state.Message)
	assert.Equal(t, []string{"Please select a customer."}, state.Errors["customerId"])
	assert.NotContains(t, state.Errors, "amount")
	assert.NotContains(t, state.Errors, "status")

	assert.Equal(t, int64(100), ta.repo.byID["inv-1"].Amount, "la factura no debe cambiar")
}

// Caso 3: delete exitoso → 204, sin redirect; la factura desaparece.
func TestInvoiceHTTP_DeleteExitoso_Retorna204(t *testing.T) {
	ta := buildInvoiceApp()
	ta.repo.byID["inv-1"] = entity.Invoice{ID: "inv-1"}

	resp := postForm(t, ta.app, "/dashboard/invoices/inv-1/delete", url.Values{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))
	assert.Empty(t, ta.repo.all())
}

// Caso 4: fallo del store en delete → se escala al error boundary y responde
// la página de error genérica, sin detalle del fallo.
func TestInvoiceHTTP_DeleteFallido_ErrorBoundary(t *testing.T) {
	ta := buildInvoiceApp()
	ta.repo.forceErr = context.DeadlineExceeded

	resp := postForm(t, ta.app, "/dashboard/invoices/inv-1/delete", url.Values{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Something went wrong.")
	assert.NotContains(t, string(body), "deadline", "el detalle del fallo no debe filtrarse al cliente")
}

// Caso 5: sin sesión → 401, la mutación nunca llega al repo.
func TestInvoiceHTTP_SinSesion_Retorna401(t *testing.T) {
	ta := buildInvoiceApp()

	form := url.Values{"customerId": {"c-1"}, "amount": {"10"}, "status": {"paid"}}
	req := httptest.NewRequest(http.MethodPost, "/dashboard/invoices/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, ta.repo.all())
}

// Caso 6: GET del formulario de edición → monto en unidades mayores; 404 si
// la factura no existe.
func TestInvoiceHTTP_GetForEdit(t *testing.T) {
	ta := buildInvoiceApp()
	ta.repo.byID["inv-1"] = entity.Invoice{ID: "inv-1", CustomerID: "c-1", Amount: 4999, Status: "pending", Date: time.Now()}

	resp := getJSON(t, ta.app, "/dashboard/invoices/inv-1")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var form struct {
		Amount string `json:"amount"`
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&form))
	assert.Equal(t, "49.99", form.Amount)
	assert.Equal(t, "pending", form.Status)

	resp404 := getJSON(t, ta.app, "/dashboard/invoices/no-existe")
	defer resp404.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp404.StatusCode)
}

// Caso 7: el listado se sirve cacheado por ruta y una mutación lo invalida,
// incluidas las variantes paginadas.
func TestInvoiceHTTP_ListadoCacheadoEInvalidado(t *testing.T) {
	ta := buildInvoiceApp()

	// Primera lectura puebla el cache; la segunda no toca el store.
	resp := getJSON(t, ta.app, "/dashboard/invoices/?page=2")
	resp.Body.Close()
	resp = getJSON(t, ta.app, "/dashboard/invoices/?page=2")
	resp.Body.Close()
	assert.Equal(t, 1, ta.analytics.listCalls, "la segunda lectura debe salir del cache")

	// Un create invalida todas las variantes del listado.
	resp = postForm(t, ta.app, "/dashboard/invoices/", url.Values{
		"customerId": {"c-1"},
		"amount":     {"5"},
		"status":     {"paid"},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = getJSON(t, ta.app, "/dashboard/invoices/?page=2")
	resp.Body.Close()
	assert.Equal(t, 2, ta.analytics.listCalls, "tras la mutación el listado se recalcula")
}
