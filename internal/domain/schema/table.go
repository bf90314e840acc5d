package schema

import "github.com/sqlhandbook/querysim/internal/domain/data"

// Table is an in-memory result-set shaped collection of rows.
// Insertion order is the canonical row order until an explicit sort.
// Invariant: every row carries exactly the declared columns.
type Table struct {
	Name    string
	Columns []Column
	Rows    []data.Row
}

// NewTable creates an empty table with the given schema.
func NewTable(name string, columns []Column) *Table {
	return &Table{
		Name:    name,
		Columns: columns,
		Rows:    []data.Row{},
	}
}

// Column looks up a declared column by name.
func (t *Table) Column(name string) (Column, bool) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the declared column names in schema order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Append adds a row to the table. The row is copied so later caller
// mutations cannot reach the table.
func (t *Table) Append(row data.Row) {
	t.Rows = append(t.Rows, row.Copy())
}

// Empty returns a new table with the same name and schema but no rows.
func (t *Table) Empty() *Table {
	columns := make([]Column, len(t.Columns))
	copy(columns, t.Columns)
	return &Table{
		Name:    t.Name,
		Columns: columns,
		Rows:    []data.Row{},
	}
}

// Clone returns a deep copy of the table. Evaluation operates on
// clones so the input table is never mutated.
func (t *Table) Clone() *Table {
	out := t.Empty()
	out.Rows = make([]data.Row, len(t.Rows))
	for i, row := range t.Rows {
		out.Rows[i] = row.Copy()
	}
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
