package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlhandbook/querysim/internal/dataset"
)

func TestEmployees_FixedTable(t *testing.T) {
	table := dataset.Employees()

	require.Equal(t, 8, table.Len())
	assert.Equal(t, "employees", table.Name)
	assert.Equal(t, "John Doe", table.Rows[0]["name"])
	assert.Equal(t, int64(75000), table.Rows[0]["salary"])
	assert.Equal(t, "Sarah Connor", table.Rows[7]["name"])

	// Every call returns identical data.
	again := dataset.Employees()
	assert.Equal(t, table.Rows, again.Rows)

	// Callers cannot corrupt the canonical data.
	table.Rows[0]["name"] = "mutated"
	assert.Equal(t, "John Doe", dataset.Employees().Rows[0]["name"])
}

func TestGenerateSeeded_Reproducible(t *testing.T) {
	first, err := dataset.GenerateSeeded(dataset.DomainSales, 30, 7)
	require.NoError(t, err)
	second, err := dataset.GenerateSeeded(dataset.DomainSales, 30, 7)
	require.NoError(t, err)

	require.Equal(t, 30, first.Len())
	assert.Equal(t, first.Rows, second.Rows)

	other, err := dataset.GenerateSeeded(dataset.DomainSales, 30, 8)
	require.NoError(t, err)
	assert.NotEqual(t, first.Rows, other.Rows, "a different seed should produce different data")
}

func TestGenerate_SchemaInvariant(t *testing.T) {
	domains := []dataset.Domain{
		dataset.DomainSales,
		dataset.DomainCustomers,
		dataset.DomainProducts,
		dataset.DomainOrders,
	}

	for _, domain := range domains {
		table, err := dataset.GenerateSeeded(domain, 10, 1)
		require.NoError(t, err, string(domain))
		require.Equal(t, 10, table.Len(), string(domain))

		// Every row carries exactly the declared columns.
		for i, row := range table.Rows {
			require.Len(t, row, len(table.Columns), "%s row %d", domain, i)
			for _, col := range table.Columns {
				_, ok := row.Value(col.Name)
				assert.True(t, ok, "%s row %d missing column %s", domain, i, col.Name)
			}
		}
	}
}

func TestGenerate_UnknownDomain(t *testing.T) {
	_, err := dataset.Generate(dataset.Domain("payroll"), 5)
	assert.Error(t, err)
}

func TestGenerate_EmployeesIgnoresSize(t *testing.T) {
	table, err := dataset.GenerateSeeded(dataset.DomainEmployees, 100, 3)
	require.NoError(t, err)
	assert.Equal(t, 8, table.Len(), "the employees domain is a fixed literal table")
}
