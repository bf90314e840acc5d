package testutil

import (
	"github.com/sqlhandbook/querysim/internal/domain/data"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
)

// CreateEmployeesTable creates the 3-row employees table used by the
// worked filter and grouping examples.
func CreateEmployeesTable() *schema.Table {
	t := schema.NewTable("employees", []schema.Column{
		{Name: "id", Type: schema.ColumnTypeInt},
		{Name: "dept", Type: schema.ColumnTypeText},
		{Name: "salary", Type: schema.ColumnTypeInt},
	})
	t.Rows = []data.Row{
		{"id": int64(1), "dept": "IT", "salary": int64(75000)},
		{"id": int64(2), "dept": "HR", "salary": int64(65000)},
		{"id": int64(3), "dept": "IT", "salary": int64(80000)},
	}
	return t
}

// CreateStaffTable creates a wider staff table with a NULL bonus cell
// for null-handling tests.
func CreateStaffTable() *schema.Table {
	t := schema.NewTable("staff", []schema.Column{
		{Name: "id", Type: schema.ColumnTypeInt},
		{Name: "name", Type: schema.ColumnTypeText},
		{Name: "dept", Type: schema.ColumnTypeText},
		{Name: "salary", Type: schema.ColumnTypeInt},
		{Name: "bonus", Type: schema.ColumnTypeFloat},
		{Name: "hired", Type: schema.ColumnTypeDate},
	})
	t.Rows = []data.Row{
		{"id": int64(1), "name": "Alice", "dept": "IT", "salary": int64(75000), "bonus": 1200.0, "hired": "2020-01-15"},
		{"id": int64(2), "name": "Bob", "dept": "HR", "salary": int64(65000), "bonus": nil, "hired": "2019-03-20"},
		{"id": int64(3), "name": "Carol", "dept": "IT", "salary": int64(80000), "bonus": 900.0, "hired": "2021-07-10"},
		{"id": int64(4), "name": "Dave", "dept": "IT", "salary": int64(75000), "bonus": nil, "hired": "2018-11-05"},
		{"id": int64(5), "name": "Erin", "dept": "HR", "salary": int64(62000), "bonus": 500.0, "hired": "2022-01-03"},
	}
	return t
}
