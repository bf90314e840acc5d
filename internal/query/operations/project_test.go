package operations_test

import (
	"testing"

	"github.com/sqlhandbook/querysim/internal/query/operations"
	"github.com/sqlhandbook/querysim/internal/query/operations/testutil"
)

// TestProject_SelectsColumnsInOrder tests projection order and width.
func TestProject_SelectsColumnsInOrder(t *testing.T) {
	table := testutil.CreateStaffTable()

	result, err := operations.Project(table, []string{"salary", "name"})
	testutil.AssertNoError(t, err, "SELECT salary, name")
	testutil.AssertColumnNames(t, result, []string{"salary", "name"}, "SELECT salary, name")
	testutil.AssertRowCount(t, result, 5, "SELECT salary, name")
	if len(result.Rows[0]) != 2 {
		t.Errorf("expected 2 cells per row, got %d", len(result.Rows[0]))
	}
}

// TestProject_EmptyListMeansStar tests SELECT *.
func TestProject_EmptyListMeansStar(t *testing.T) {
	table := testutil.CreateStaffTable()

	result, err := operations.Project(table, nil)
	testutil.AssertNoError(t, err, "SELECT *")
	testutil.AssertColumnNames(t, result, table.ColumnNames(), "SELECT *")
}

// TestProject_UnknownColumn tests the diagnostic.
func TestProject_UnknownColumn(t *testing.T) {
	table := testutil.CreateStaffTable()

	_, err := operations.Project(table, []string{"name", "bogus"})
	testutil.AssertError(t, err, "unknown projected column")
}
