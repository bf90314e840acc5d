package operations_test

import (
	"testing"

	"github.com/sqlhandbook/querysim/internal/query/operations"
	"github.com/sqlhandbook/querysim/internal/query/operations/testutil"
	"github.com/sqlhandbook/querysim/internal/query/params"
)

// TestWindow_RowNumber tests ROW_NUMBER over the whole table, ordered
// by salary descending.
func TestWindow_RowNumber(t *testing.T) {
	table := testutil.CreateEmployeesTable()

	result, err := operations.Window(table, &params.Window{
		Func:    params.WinRowNumber,
		OrderBy: []params.SortKey{{Column: "salary", Ascending: false}},
	})

	testutil.AssertNoError(t, err, "ROW_NUMBER")
	testutil.AssertRowCount(t, result, 3, "ROW_NUMBER")
	testutil.AssertCell(t, result, 0, "salary", int64(80000), "ordered by salary DESC")
	testutil.AssertCell(t, result, 0, "window_result", int64(1), "first row number")
	testutil.AssertCell(t, result, 2, "window_result", int64(3), "last row number")
}

// TestWindow_RankWithTies tests RANK and DENSE_RANK tie behavior.
// Staff salaries descending: 80000, 75000, 75000, 65000, 62000.
func TestWindow_RankWithTies(t *testing.T) {
	table := testutil.CreateStaffTable()
	orderBy := []params.SortKey{{Column: "salary", Ascending: false}}

	rank, err := operations.Window(table, &params.Window{Func: params.WinRank, OrderBy: orderBy})
	testutil.AssertNoError(t, err, "RANK")
	testutil.AssertCell(t, rank, 0, "window_result", int64(1), "RANK 80000")
	testutil.AssertCell(t, rank, 1, "window_result", int64(2), "RANK first 75000")
	testutil.AssertCell(t, rank, 2, "window_result", int64(2), "RANK tied 75000")
	testutil.AssertCell(t, rank, 3, "window_result", int64(4), "RANK skips after tie")

	dense, err := operations.Window(table, &params.Window{Func: params.WinDenseRank, OrderBy: orderBy})
	testutil.AssertNoError(t, err, "DENSE_RANK")
	testutil.AssertCell(t, dense, 3, "window_result", int64(3), "DENSE_RANK has no gaps")
}

// TestWindow_PartitionedRunningSum tests SUM OVER (PARTITION BY dept
// ORDER BY salary): a running sum within each department.
func TestWindow_PartitionedRunningSum(t *testing.T) {
	table := testutil.CreateEmployeesTable()

	result, err := operations.Window(table, &params.Window{
		Func:        params.WinSum,
		Column:      "salary",
		PartitionBy: "dept",
		OrderBy:     []params.SortKey{{Column: "salary", Ascending: true}},
	})

	testutil.AssertNoError(t, err, "running SUM")
	// Sorted ascending by salary: HR 65000, IT 75000, IT 80000.
	testutil.AssertCell(t, result, 0, "window_result", 65000.0, "HR running sum")
	testutil.AssertCell(t, result, 1, "window_result", 75000.0, "IT first running sum")
	testutil.AssertCell(t, result, 2, "window_result", 155000.0, "IT second running sum")
}

// TestWindow_LagLead tests the shift functions at partition edges.
func TestWindow_LagLead(t *testing.T) {
	table := testutil.CreateEmployeesTable()
	orderBy := []params.SortKey{{Column: "id", Ascending: true}}

	lag, err := operations.Window(table, &params.Window{Func: params.WinLag, Column: "salary", OrderBy: orderBy})
	testutil.AssertNoError(t, err, "LAG")
	testutil.AssertCell(t, lag, 0, "window_result", nil, "LAG of first row is NULL")
	testutil.AssertCell(t, lag, 1, "window_result", int64(75000), "LAG carries previous salary")

	lead, err := operations.Window(table, &params.Window{Func: params.WinLead, Column: "salary", OrderBy: orderBy})
	testutil.AssertNoError(t, err, "LEAD")
	testutil.AssertCell(t, lead, 2, "window_result", nil, "LEAD of last row is NULL")
	testutil.AssertCell(t, lead, 0, "window_result", int64(65000), "LEAD carries next salary")
}

// TestWindow_UnknownColumns tests window diagnostics.
func TestWindow_UnknownColumns(t *testing.T) {
	table := testutil.CreateEmployeesTable()

	_, err := operations.Window(table, &params.Window{Func: params.WinSum, Column: "bogus"})
	testutil.AssertError(t, err, "unknown operand column")

	_, err = operations.Window(table, &params.Window{Func: params.WinRowNumber, PartitionBy: "bogus"})
	testutil.AssertError(t, err, "unknown partition column")
}
