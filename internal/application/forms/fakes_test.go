package forms_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/acme-dashboard/internal/domain"
	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repos en memoria y cache que registra invalidaciones
// ──────────────────────────────────────────────────────────────────────────────

// fakeInvoiceRepo repo de facturas en memoria. execCount cuenta las
// sentencias de mutación emitidas (para verificar que la validación fallida
// no llega al store).
type fakeInvoiceRepo struct {
	mu        sync.Mutex
	invoices  map[string]entity.Invoice
	execCount int

	createErr error
	updateErr error
	deleteErr error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execCount++
	if r.createErr != nil {
		return r.createErr
	}
	r.invoices[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execCount++
	if r.updateErr != nil {
		return r.updateErr
	}
	// Reemplazo completo de campos mutables; date no se toca.
	existing, ok := r.invoices[inv.ID]
	if !ok {
		return errors.New("fila inexistente")
	}
	existing.CustomerID = inv.CustomerID
	existing.Amount = inv.Amount
	existing.Status = inv.Status
	r.invoices[inv.ID] = existing
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execCount++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.invoices, id)
	return nil
}

// single devuelve la única factura guardada (falla el test si hay 0 o >1 vía caller).
func (r *fakeInvoiceRepo) single() (entity.Invoice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.invoices) != 1 {
		return entity.Invoice{}, false
	}
	for _, inv := range r.invoices {
		return inv, true
	}
	return entity.Invoice{}, false
}

// fakeCustomerRepo repo de clientes en memoria. dependents simula la FK:
// borrar un cliente con facturas dependientes falla como lo haría el store.
type fakeCustomerRepo struct {
	mu         sync.Mutex
	customers  map[string]entity.Customer
	dependents map[string]int
	execCount  int

	createErr error
	updateErr error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers:  make(map[string]entity.Customer),
		dependents: make(map[string]int),
	}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execCount++
	if r.createErr != nil {
		return r.createErr
	}
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execCount++
	if r.updateErr != nil {
		return r.updateErr
	}
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.execCount++
	if r.dependents[id] > 0 {
		return domain.ErrConflict
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []*entity.Customer
	for _, c := range r.customers {
		cc := c
		list = append(list, &cc)
	}
	return list, nil
}

func (r *fakeCustomerRepo) single() (entity.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.customers) != 1 {
		return entity.Customer{}, false
	}
	for _, c := range r.customers {
		return c, true
	}
	return entity.Customer{}, false
}

// recordingCache registra las rutas invalidadas.
type recordingCache struct {
	mu    sync.Mutex
	paths []string
	err   error
}

func (c *recordingCache) Invalidate(ctx context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.paths = append(c.paths, path)
	return nil
}

func (c *recordingCache) invalidated() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}
