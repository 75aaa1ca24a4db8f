package dto

// InvoiceRowDTO fila de la tabla de facturas.
type InvoiceRowDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	ImageURL *string `json:"image_url"`
	Amount   string  `json:"amount"` // formateado como moneda
	Date     string  `json:"date"`   // ISO YYYY-MM-DD
	Status   string  `json:"status"`
}

// InvoicePageDTO página de la tabla de facturas más el total de páginas.
type InvoicePageDTO struct {
	Invoices   []InvoiceRowDTO `json:"invoices"`
	TotalPages int64           `json:"total_pages"`
}

// InvoiceFormDTO factura para precargar el formulario de edición.
// Amount va en unidades mayores (dólares), como lo espera el input.
type InvoiceFormDTO struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}
