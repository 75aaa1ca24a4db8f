package repository

import (
	"context"

	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (DIP).
// Delete falla con error si el cliente tiene facturas dependientes: la
// integridad referencial la hace cumplir el store (FK), no esta capa.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Customer, error)
}
