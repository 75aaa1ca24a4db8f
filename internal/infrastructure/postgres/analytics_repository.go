package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y los listados.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetCardTotals devuelve conteos y sumas por estado para las tarjetas.
// SUM sobre BIGINT devuelve NUMERIC; se escanea con shopspring/decimal
// (codec registrado en el pool) y se vuelve a centavos enteros.
func (r *AnalyticsRepo) GetCardTotals(ctx context.Context) (repository.CardTotals, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM invoices)                                          AS invoice_count,
	    (SELECT COUNT(*) FROM customers)                                         AS customer_count,
	    COALESCE(SUM(CASE WHEN status = 'paid'    THEN amount ELSE 0 END), 0)    AS total_paid,
	    COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)    AS total_pending
	FROM invoices`

	var out repository.CardTotals
	var paid, pending decimal.Decimal
	err := r.q.QueryRow(ctx, query).Scan(&out.InvoiceCount, &out.CustomerCount, &paid, &pending)
	if err != nil {
		return repository.CardTotals{}, fmt.Errorf("analytics.GetCardTotals: %w", err)
	}
	out.TotalPaid = paid.IntPart()
	out.TotalPending = pending.IntPart()
	return out, nil
}

// GetMonthlyRevenue devuelve la serie de ingresos mensuales del gráfico.
func (r *AnalyticsRepo) GetMonthlyRevenue(ctx context.Context) ([]entity.Revenue, error) {
	rows, err := r.q.Query(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlyRevenue: %w", err)
	}
	defer rows.Close()
	var results []entity.Revenue
	for rows.Next() {
		var rev entity.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlyRevenue scan: %w", err)
		}
		results = append(results, rev)
	}
	return results, rows.Err()
}

// GetLatestInvoices devuelve las `limit` facturas más recientes con los
// datos del cliente para el widget del dashboard.
func (r *AnalyticsRepo) GetLatestInvoices(ctx context.Context, limit int) ([]repository.LatestInvoice, error) {
	const query = `
	SELECT i.id, c.name, c.email, c.image_url, i.amount
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id
	ORDER BY i.date DESC
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetLatestInvoices: %w", err)
	}
	defer rows.Close()
	var results []repository.LatestInvoice
	for rows.Next() {
		var row repository.LatestInvoice
		if err := rows.Scan(&row.ID, &row.Name, &row.Email, &row.ImageURL, &row.Amount); err != nil {
			return nil, fmt.Errorf("analytics.GetLatestInvoices scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetFilteredInvoices busca en nombre/email del cliente y en monto, fecha y
// estado de la factura (ILIKE sobre la representación textual), ordenado por
// fecha descendente y paginado.
func (r *AnalyticsRepo) GetFilteredInvoices(ctx context.Context, query string, limit, offset int) ([]repository.InvoiceRow, error) {
	const sql = `
	SELECT i.id, i.customer_id, c.name, c.email, c.image_url, i.amount, i.date, i.status
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id
	WHERE
	    c.name ILIKE $1 OR
	    c.email ILIKE $1 OR
	    i.amount::text ILIKE $1 OR
	    i.date::text ILIKE $1 OR
	    i.status ILIKE $1
	ORDER BY i.date DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(ctx, sql, like(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetFilteredInvoices: %w", err)
	}
	defer rows.Close()
	var results []repository.InvoiceRow
	for rows.Next() {
		var row repository.InvoiceRow
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.Name, &row.Email, &row.ImageURL,
			&row.Amount, &row.Date, &row.Status,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetFilteredInvoices scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountFilteredInvoices cuenta las facturas que matchean el filtro (para el paginador).
func (r *AnalyticsRepo) CountFilteredInvoices(ctx context.Context, query string) (int64, error) {
	const sql = `
	SELECT COUNT(*)
	FROM invoices i
	JOIN customers c ON c.id = i.customer_id
	WHERE
	    c.name ILIKE $1 OR
	    c.email ILIKE $1 OR
	    i.amount::text ILIKE $1 OR
	    i.date::text ILIKE $1 OR
	    i.status ILIKE $1`

	var count int64
	if err := r.q.QueryRow(ctx, sql, like(query)).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountFilteredInvoices: %w", err)
	}
	return count, nil
}

// GetCustomerTable devuelve clientes filtrados por nombre/email con número
// de facturas y totales pendiente/pagado.
func (r *AnalyticsRepo) GetCustomerTable(ctx context.Context, query string) ([]repository.CustomerRow, error) {
	const sql = `
	SELECT
	    c.id, c.name, c.email, c.image_url,
	    COUNT(i.id)                                                              AS total_invoices,
	    COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0) AS total_pending,
	    COALESCE(SUM(CASE WHEN i.status = 'paid'    THEN i.amount ELSE 0 END), 0) AS total_paid
	FROM customers c
	LEFT JOIN invoices i ON i.customer_id = c.id
	WHERE c.name ILIKE $1 OR c.email ILIKE $1
	GROUP BY c.id, c.name, c.email, c.image_url
	ORDER BY c.name ASC`

	rows, err := r.q.Query(ctx, sql, like(query))
	if err != nil {
		return nil, fmt.Errorf("analytics.GetCustomerTable: %w", err)
	}
	defer rows.Close()
	var results []repository.CustomerRow
	for rows.Next() {
		var row repository.CustomerRow
		var pending, paid decimal.Decimal
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Email, &row.ImageURL,
			&row.TotalInvoices, &pending, &paid,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetCustomerTable scan: %w", err)
		}
		row.TotalPending = pending.IntPart()
		row.TotalPaid = paid.IntPart()
		results = append(results, row)
	}
	return results, rows.Err()
}

func like(query string) string {
	return "%" + query + "%"
}
