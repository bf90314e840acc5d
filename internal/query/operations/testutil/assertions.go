package testutil

import (
	"testing"

	"github.com/sqlhandbook/querysim/internal/domain/data"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
)

// AssertRowCount checks that the table has the expected number of rows.
func AssertRowCount(t *testing.T, table *schema.Table, expected int, context string) {
	t.Helper()
	if table.Len() != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, table.Len())
	}
}

// AssertCell checks a single cell value.
func AssertCell(t *testing.T, table *schema.Table, row int, column string, expected interface{}, context string) {
	t.Helper()
	if row >= table.Len() {
		t.Errorf("%s: row %d out of range (table has %d rows)", context, row, table.Len())
		return
	}
	actual, ok := table.Rows[row].Value(column)
	if !ok {
		t.Errorf("%s: row %d has no column %q", context, row, column)
		return
	}
	if expected == nil {
		if actual != nil {
			t.Errorf("%s: row %d column %q: expected NULL, got %v", context, row, column, actual)
		}
		return
	}
	if !data.Equal(actual, expected) {
		t.Errorf("%s: row %d column %q: expected %v, got %v", context, row, column, expected, actual)
	}
}

// AssertColumnNames checks the table's declared columns in order.
func AssertColumnNames(t *testing.T, table *schema.Table, expected []string, context string) {
	t.Helper()
	names := table.ColumnNames()
	if len(names) != len(expected) {
		t.Errorf("%s: expected columns %v, got %v", context, expected, names)
		return
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("%s: expected columns %v, got %v", context, expected, names)
			return
		}
	}
}

// AssertNoError checks that an error is nil.
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil.
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
