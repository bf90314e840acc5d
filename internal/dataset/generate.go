package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sqlhandbook/querysim/internal/domain/data"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
)

// Domain tags the sample data domains the provider knows how to build.
type Domain string

const (
	DomainEmployees Domain = "employees"
	DomainSales     Domain = "sales"
	DomainCustomers Domain = "customers"
	DomainProducts  Domain = "products"
	DomainOrders    Domain = "orders"
)

// anchorDate is the fixed reference date all generated dates count
// back from, so seeded generation stays reproducible across runs.
var anchorDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Generate builds a sample table of the requested size. Generation is
// not reproducible between calls; use GenerateSeeded when tests or
// worked examples need exact values.
func Generate(domain Domain, size int) (*schema.Table, error) {
	return generate(domain, size, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// GenerateSeeded builds a sample table of the requested size with
// fully reproducible contents for the given seed.
func GenerateSeeded(domain Domain, size int, seed int64) (*schema.Table, error) {
	return generate(domain, size, rand.New(rand.NewSource(seed)))
}

func generate(domain Domain, size int, rng *rand.Rand) (*schema.Table, error) {
	switch domain {
	case DomainEmployees:
		// Deterministic domain: the fixed literal table, size ignored.
		return Employees(), nil
	case DomainSales:
		return generateSales(size, rng), nil
	case DomainCustomers:
		return generateCustomers(size, rng), nil
	case DomainProducts:
		return generateProducts(size, rng), nil
	case DomainOrders:
		return generateOrders(size, rng), nil
	default:
		return nil, fmt.Errorf("unknown sample domain %q", domain)
	}
}

func generateSales(size int, rng *rand.Rand) *schema.Table {
	t := schema.NewTable("sales", []schema.Column{
		{Name: "sale_id", Type: schema.ColumnTypeInt},
		{Name: "product_category", Type: schema.ColumnTypeText},
		{Name: "region", Type: schema.ColumnTypeText},
		{Name: "sale_amount", Type: schema.ColumnTypeFloat},
		{Name: "quantity_sold", Type: schema.ColumnTypeInt},
		{Name: "sale_date", Type: schema.ColumnTypeDate},
		{Name: "salesperson_id", Type: schema.ColumnTypeInt},
	})
	for i := 1; i <= size; i++ {
		t.Append(data.Row{
			"sale_id":          int64(i),
			"product_category": pick(rng, categories),
			"region":           pick(rng, regions),
			"sale_amount":      roundCents(10 + rng.Float64()*990),
			"quantity_sold":    int64(1 + rng.Intn(20)),
			"sale_date":        daysAgo(rng, 1, 365),
			"salesperson_id":   int64(1 + rng.Intn(25)),
		})
	}
	return t
}

func generateCustomers(size int, rng *rand.Rand) *schema.Table {
	t := schema.NewTable("customers", []schema.Column{
		{Name: "customer_id", Type: schema.ColumnTypeInt},
		{Name: "first_name", Type: schema.ColumnTypeText},
		{Name: "last_name", Type: schema.ColumnTypeText},
		{Name: "email", Type: schema.ColumnTypeText},
		{Name: "city", Type: schema.ColumnTypeText},
		{Name: "state", Type: schema.ColumnTypeText},
		{Name: "registration_date", Type: schema.ColumnTypeDate},
		{Name: "status", Type: schema.ColumnTypeText},
	})
	for i := 1; i <= size; i++ {
		t.Append(data.Row{
			"customer_id":       int64(i),
			"first_name":        pick(rng, firstNames),
			"last_name":         pick(rng, lastNames),
			"email":             fmt.Sprintf("customer%d@email.com", i),
			"city":              pick(rng, cities),
			"state":             pick(rng, states),
			"registration_date": daysAgo(rng, 1, 365),
			"status":            pick(rng, customerStatus),
		})
	}
	return t
}

func generateProducts(size int, rng *rand.Rand) *schema.Table {
	t := schema.NewTable("products", []schema.Column{
		{Name: "product_id", Type: schema.ColumnTypeInt},
		{Name: "product_name", Type: schema.ColumnTypeText},
		{Name: "category", Type: schema.ColumnTypeText},
		{Name: "price", Type: schema.ColumnTypeFloat},
		{Name: "stock_quantity", Type: schema.ColumnTypeInt},
		{Name: "supplier_id", Type: schema.ColumnTypeInt},
		{Name: "created_date", Type: schema.ColumnTypeDate},
	})
	for i := 1; i <= size; i++ {
		category := pick(rng, categories)
		t.Append(data.Row{
			"product_id":     int64(i),
			"product_name":   pick(rng, productNames[category]),
			"category":       category,
			"price":          roundCents(10 + rng.Float64()*490),
			"stock_quantity": int64(rng.Intn(101)),
			"supplier_id":    int64(1 + rng.Intn(10)),
			"created_date":   daysAgo(rng, 1, 180),
		})
	}
	return t
}

func generateOrders(size int, rng *rand.Rand) *schema.Table {
	t := schema.NewTable("orders", []schema.Column{
		{Name: "order_id", Type: schema.ColumnTypeInt},
		{Name: "customer_id", Type: schema.ColumnTypeInt},
		{Name: "order_date", Type: schema.ColumnTypeDate},
		{Name: "total_amount", Type: schema.ColumnTypeFloat},
		{Name: "status", Type: schema.ColumnTypeText},
		{Name: "payment_method", Type: schema.ColumnTypeText},
	})
	for i := 1; i <= size; i++ {
		t.Append(data.Row{
			"order_id":       int64(i),
			"customer_id":    int64(1 + rng.Intn(50)),
			"order_date":     daysAgo(rng, 1, 90),
			"total_amount":   roundCents(20 + rng.Float64()*980),
			"status":         pick(rng, orderStatus),
			"payment_method": pick(rng, paymentMethods),
		})
	}
	return t
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// daysAgo formats a date between min and max days before the anchor.
func daysAgo(rng *rand.Rand, min, max int) string {
	days := min + rng.Intn(max-min+1)
	return anchorDate.AddDate(0, 0, -days).Format("2006-01-02")
}
