package dto

// CustomerRowDTO fila de la tabla de clientes con agregados de facturación.
type CustomerRowDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ImageURL      *string `json:"image_url"`
	TotalInvoices int64   `json:"total_invoices"`
	TotalPending  string  `json:"total_pending"` // formateado como moneda
	TotalPaid     string  `json:"total_paid"`
}

// CustomerOptionDTO opción del selector de cliente en el formulario de factura.
type CustomerOptionDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
