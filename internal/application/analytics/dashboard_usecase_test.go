package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/acme-dashboard/internal/application/analytics"
	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
	"github.com/jhoicas/acme-dashboard/internal/domain/repository"
)

// stubAnalytics repositorio de analítica con datos fijos y errores inyectables.
type stubAnalytics struct {
	totals    repository.CardTotals
	revenue   []entity.Revenue
	latest    []repository.LatestInvoice
	latestLim int
	errOn     string
}

func (s *stubAnalytics) GetCardTotals(context.Context) (repository.CardTotals, error) {
	if s.errOn == "totals" {
		return repository.CardTotals{}, errors.New("conexión rechazada")
	}
	return s.totals, nil
}

func (s *stubAnalytics) GetMonthlyRevenue(context.Context) ([]entity.Revenue, error) {
	if s.errOn == "revenue" {
		return nil, errors.New("conexión rechazada")
	}
	return s.revenue, nil
}

func (s *stubAnalytics) GetLatestInvoices(_ context.Context, limit int) ([]repository.LatestInvoice, error) {
	s.latestLim = limit
	if s.errOn == "latest" {
		return nil, errors.New("conexión rechazada")
	}
	return s.latest, nil
}

func (s *stubAnalytics) GetFilteredInvoices(context.Context, string, int, int) ([]repository.InvoiceRow, error) {
	return nil, nil
}

func (s *stubAnalytics) CountFilteredInvoices(context.Context, string) (int64, error) {
	return 0, nil
}

func (s *stubAnalytics) GetCustomerTable(context.Context, string) ([]repository.CustomerRow, error) {
	return nil, nil
}

// Caso 1: resumen completo — montos formateados como moneda, conteos crudos
// y el widget de últimas facturas pedido con su límite fijo.
func TestGetSummary_FormateaTarjetasYWidget(t *testing.T) {
	img := "https://example.com/a.png"
	stub := &stubAnalytics{
		totals: repository.CardTotals{
			InvoiceCount:  13,
			CustomerCount: 6,
			TotalPaid:     123456789,
			TotalPending:  4999,
		},
		revenue: []entity.Revenue{{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800}},
		latest: []repository.LatestInvoice{
			{ID: "inv-1", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: &img, Amount: 889245},
		},
	}
	uc := analytics.NewDashboardUseCase(stub)

	sum, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(13), sum.Cards.NumberOfInvoices)
	assert.Equal(t, int64(6), sum.Cards.NumberOfCustomers)
	assert.Equal(t, "$1,234,567.89", sum.Cards.TotalPaid, "los totales van formateados como moneda")
	assert.Equal(t, "$49.99", sum.Cards.TotalPending)

	require.Len(t, sum.Revenue, 2)
	assert.Equal(t, "Jan", sum.Revenue[0].Month)
	assert.Equal(t, int64(2000), sum.Revenue[0].Revenue)

	require.Len(t, sum.LatestInvoices, 1)
	assert.Equal(t, "$8,892.45", sum.LatestInvoices[0].Amount)
	assert.Equal(t, &img, sum.LatestInvoices[0].ImageURL)
	assert.Equal(t, 5, stub.latestLim, "el widget pide exactamente 5 facturas")
}

// Caso 2: sin datos el resumen devuelve slices vacíos (no nil) y "$0.00".
func TestGetSummary_SinDatos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&stubAnalytics{})

	sum, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "$0.00", sum.Cards.TotalPaid)
	assert.NotNil(t, sum.Revenue)
	assert.Empty(t, sum.Revenue)
	assert.NotNil(t, sum.LatestInvoices)
	assert.Empty(t, sum.LatestInvoices)
}

// Caso 3: cualquier consulta fallida aborta el resumen con error envuelto.
func TestGetSummary_PropagaErrores(t *testing.T) {
	for _, errOn := range []string{"totals", "revenue", "latest"} {
		t.Run(errOn, func(t *testing.T) {
			uc := analytics.NewDashboardUseCase(&stubAnalytics{errOn: errOn})
			sum, err := uc.GetSummary(context.Background())
			assert.Error(t, err)
			assert.Nil(t, sum)
		})
	}
}
