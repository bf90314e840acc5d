package operations_test

import (
	"testing"

	"github.com/sqlhandbook/querysim/internal/query/operations"
	"github.com/sqlhandbook/querysim/internal/query/operations/testutil"
	"github.com/sqlhandbook/querysim/internal/query/params"
)

// TestSort_SingleKeyDescending tests a plain ORDER BY salary DESC.
func TestSort_SingleKeyDescending(t *testing.T) {
	table := testutil.CreateEmployeesTable()

	result, err := operations.Sort(table, []params.SortKey{
		{Column: "salary", Ascending: false},
	})

	testutil.AssertNoError(t, err, "ORDER BY salary DESC")
	testutil.AssertCell(t, result, 0, "salary", int64(80000), "highest first")
	testutil.AssertCell(t, result, 1, "salary", int64(75000), "middle")
	testutil.AssertCell(t, result, 2, "salary", int64(65000), "lowest last")
}

// TestSort_Stability tests that rows equal on every key keep their
// relative insertion order. Alice and Dave share dept and salary;
// Alice was inserted first.
func TestSort_Stability(t *testing.T) {
	table := testutil.CreateStaffTable()

	result, err := operations.Sort(table, []params.SortKey{
		{Column: "dept", Ascending: true},
		{Column: "salary", Ascending: false},
	})

	testutil.AssertNoError(t, err, "multi-key sort")
	testutil.AssertRowCount(t, result, 5, "multi-key sort")
	// HR block first (Bob 65000, Erin 62000), then IT
	// (Carol 80000, then the Alice/Dave 75000 tie in input order).
	testutil.AssertCell(t, result, 0, "name", "Bob", "HR highest")
	testutil.AssertCell(t, result, 1, "name", "Erin", "HR lowest")
	testutil.AssertCell(t, result, 2, "name", "Carol", "IT highest")
	testutil.AssertCell(t, result, 3, "name", "Alice", "tie keeps insertion order")
	testutil.AssertCell(t, result, 4, "name", "Dave", "tie keeps insertion order")
}

// TestSort_NullsFirstAscending tests NULL ordering: ascending puts
// NULL before every value, descending after.
func TestSort_NullsFirstAscending(t *testing.T) {
	table := testutil.CreateStaffTable()

	asc, err := operations.Sort(table, []params.SortKey{{Column: "bonus", Ascending: true}})
	testutil.AssertNoError(t, err, "bonus ASC")
	testutil.AssertCell(t, asc, 0, "bonus", nil, "NULL first ascending")
	testutil.AssertCell(t, asc, 1, "bonus", nil, "NULL first ascending")
	testutil.AssertCell(t, asc, 4, "bonus", 1200.0, "largest last")

	desc, err := operations.Sort(table, []params.SortKey{{Column: "bonus", Ascending: false}})
	testutil.AssertNoError(t, err, "bonus DESC")
	testutil.AssertCell(t, desc, 0, "bonus", 1200.0, "largest first")
	testutil.AssertCell(t, desc, 4, "bonus", nil, "NULL last descending")
}

// TestSort_UnknownColumn tests the diagnostic for a bad sort key.
func TestSort_UnknownColumn(t *testing.T) {
	table := testutil.CreateEmployeesTable()

	_, err := operations.Sort(table, []params.SortKey{{Column: "bogus", Ascending: true}})
	testutil.AssertError(t, err, "sort by unknown column")
}

// TestSort_DoesNotMutateInput tests that the input order is preserved.
func TestSort_DoesNotMutateInput(t *testing.T) {
	table := testutil.CreateEmployeesTable()

	_, err := operations.Sort(table, []params.SortKey{{Column: "salary", Ascending: true}})
	testutil.AssertNoError(t, err, "sort")

	testutil.AssertCell(t, table, 0, "id", int64(1), "input order intact")
	testutil.AssertCell(t, table, 2, "id", int64(3), "input order intact")
}
