package repository

import (
	"context"

	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
// Cada método ejecuta exactamente una sentencia parametrizada; la atomicidad
// por sentencia la garantiza el store.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// Update reemplaza los campos mutables completos (customer_id, amount, status).
	// Date no se toca en updates.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
}
