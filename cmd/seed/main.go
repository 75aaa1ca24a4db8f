// seed aplica el esquema base y puebla la base con datos de ejemplo
// (usuario demo, clientes, facturas y la serie de ingresos del gráfico).
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_HOST, etc.).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/acme-dashboard/internal/domain/entity"
	"github.com/jhoicas/acme-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/acme-dashboard/pkg/config"
)

const schemaFile = "internal/infrastructure/postgres/migrations/001_schema.sql"

type seedCustomer struct {
	name, email, image string
}

type seedInvoice struct {
	customer int   // índice en customers
	amount   int64 // centavos
	status   string
	daysAgo  int
}

var customers = []seedCustomer{
	{"Evil Rabbit", "evil@rabbit.com", "/customers/evil-rabbit.png"},
	{"Delba de Oliveira", "delba@oliveira.com", "/customers/delba-de-oliveira.png"},
	{"Lee Robinson", "lee@robinson.com", "/customers/lee-robinson.png"},
	{"Michael Novotny", "michael@novotny.com", "/customers/michael-novotny.png"},
	{"Amy Burns", "amy@burns.com", "/customers/amy-burns.png"},
	{"Balazs Orban", "balazs@orban.com", "/customers/balazs-orban.png"},
}

var invoices = []seedInvoice{
	{0, 15795, entity.StatusPending, 90},
	{1, 20348, entity.StatusPending, 80},
	{4, 3040, entity.StatusPaid, 75},
	{3, 44800, entity.StatusPaid, 60},
	{5, 34577, entity.StatusPending, 45},
	{2, 54246, entity.StatusPending, 30},
	{0, 66600, entity.StatusPending, 21},
	{3, 32545, entity.StatusPaid, 14},
	{4, 1250, entity.StatusPaid, 7},
	{5, 8546, entity.StatusPaid, 3},
	{1, 500, entity.StatusPaid, 2},
	{5, 8945, entity.StatusPaid, 1},
	{2, 1000, entity.StatusPaid, 0},
}

var revenue = map[string]int64{
	"Jan": 200000, "Feb": 180000, "Mar": 220000, "Apr": 250000,
	"May": 230000, "Jun": 320000, "Jul": 350000, "Aug": 370000,
	"Sep": 250000, "Oct": 280000, "Nov": 300000, "Dec": 480000,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile(schemaFile)
	if err != nil {
		fail("leer esquema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fail("aplicar esquema: %v", err)
	}

	// Usuario demo
	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		uuid.New().String(), "User", "user@nextmail.com", string(hash),
	)
	if err != nil {
		fail("seed users: %v", err)
	}

	// Clientes y facturas
	customerIDs := make([]string, len(customers))
	for i, c := range customers {
		customerIDs[i] = uuid.New().String()
		_, err := pool.Exec(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)`,
			customerIDs[i], c.name, c.email, c.image,
		)
		if err != nil {
			fail("seed customers: %v", err)
		}
	}
	for _, inv := range invoices {
		_, err := pool.Exec(ctx, `
			INSERT INTO invoices (id, customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.New().String(), customerIDs[inv.customer], inv.amount, inv.status,
			time.Now().AddDate(0, 0, -inv.daysAgo),
		)
		if err != nil {
			fail("seed invoices: %v", err)
		}
	}

	for month, amount := range revenue {
		_, err := pool.Exec(ctx, `
			INSERT INTO revenue (month, revenue)
			VALUES ($1, $2)
			ON CONFLICT (month) DO UPDATE SET revenue = EXCLUDED.revenue`,
			month, amount,
		)
		if err != nil {
			fail("seed revenue: %v", err)
		}
	}

	fmt.Printf("seed completado: %d clientes, %d facturas\n", len(customers), len(invoices))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
