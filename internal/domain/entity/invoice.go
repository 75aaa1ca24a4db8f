package entity

import "time"

// Estados de una factura.
const (
	StatusPending = "pending" // emitida, pago pendiente
	StatusPaid    = "paid"    // pagada
)

// Invoice representa una factura del dashboard.
// Amount se guarda en unidades menores (centavos) para evitar errores de
// redondeo de punto flotante. Date se fija al crear y no se modifica en updates.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64 // centavos
	Status     string
	Date       time.Time
}
