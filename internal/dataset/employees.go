// Package dataset provides the in-memory sample tables the teaching
// modules run their simulated queries against. Nothing here touches a
// real database: small domains are fixed literal tables so every
// worked example is exact, larger ones are generated from bounded
// vocabularies for illustrative volume.
package dataset

import (
	"github.com/sqlhandbook/querysim/internal/domain/data"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
)

// Employees returns the fixed 8-row employees table used throughout
// the basic query modules. It is rebuilt on every call so callers can
// never corrupt the canonical data.
func Employees() *schema.Table {
	t := schema.NewTable("employees", []schema.Column{
		{Name: "id", Type: schema.ColumnTypeInt},
		{Name: "name", Type: schema.ColumnTypeText},
		{Name: "email", Type: schema.ColumnTypeText},
		{Name: "department", Type: schema.ColumnTypeText},
		{Name: "salary", Type: schema.ColumnTypeInt},
		{Name: "hire_date", Type: schema.ColumnTypeDate},
		{Name: "age", Type: schema.ColumnTypeInt},
		{Name: "status", Type: schema.ColumnTypeText},
	})

	rows := []data.Row{
		{"id": int64(1), "name": "John Doe", "email": "john@company.com", "department": "IT", "salary": int64(75000), "hire_date": "2020-01-15", "age": int64(30), "status": "Active"},
		{"id": int64(2), "name": "Jane Smith", "email": "jane@company.com", "department": "HR", "salary": int64(65000), "hire_date": "2019-03-20", "age": int64(28), "status": "Active"},
		{"id": int64(3), "name": "Bob Johnson", "email": "bob@company.com", "department": "IT", "salary": int64(80000), "hire_date": "2021-07-10", "age": int64(35), "status": "Active"},
		{"id": int64(4), "name": "Alice Brown", "email": "alice@company.com", "department": "Finance", "salary": int64(70000), "hire_date": "2018-11-05", "age": int64(32), "status": "Inactive"},
		{"id": int64(5), "name": "Charlie Wilson", "email": "charlie@company.com", "department": "IT", "salary": int64(72000), "hire_date": "2020-09-12", "age": int64(29), "status": "Active"},
		{"id": int64(6), "name": "Diana Prince", "email": "diana@company.com", "department": "Marketing", "salary": int64(68000), "hire_date": "2021-02-28", "age": int64(26), "status": "Active"},
		{"id": int64(7), "name": "Tom Anderson", "email": "tom@company.com", "department": "Finance", "salary": int64(85000), "hire_date": "2019-08-14", "age": int64(40), "status": "Active"},
		{"id": int64(8), "name": "Sarah Connor", "email": "sarah@company.com", "department": "HR", "salary": int64(62000), "hire_date": "2022-01-03", "age": int64(25), "status": "Active"},
	}
	for _, row := range rows {
		t.Append(row)
	}
	return t
}
