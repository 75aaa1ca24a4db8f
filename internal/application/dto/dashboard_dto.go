package dto

// CardDTO totales de las tarjetas del dashboard. Los montos van formateados
// como moneda ("$1,234.56"); los conteos, crudos.
type CardDTO struct {
	NumberOfInvoices  int64  `json:"number_of_invoices"`
	NumberOfCustomers int64  `json:"number_of_customers"`
	TotalPaid         string `json:"total_paid"`
	TotalPending      string `json:"total_pending"`
}

// RevenueDTO punto del gráfico de ingresos mensuales.
type RevenueDTO struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// LatestInvoiceDTO fila del widget de últimas facturas.
type LatestInvoiceDTO struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	ImageURL *string `json:"image_url"`
	Amount   string  `json:"amount"` // formateado como moneda
}

// DashboardSummaryDTO respuesta completa de GET /dashboard.
type DashboardSummaryDTO struct {
	Cards          CardDTO            `json:"cards"`
	Revenue        []RevenueDTO       `json:"revenue"`
	LatestInvoices []LatestInvoiceDTO `json:"latest_invoices"`
}
