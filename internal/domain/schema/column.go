package schema

// ColumnType identifies the declared type of a table column.
type ColumnType string

const (
	ColumnTypeInt   ColumnType = "INT"
	ColumnTypeFloat ColumnType = "FLOAT"
	ColumnTypeText  ColumnType = "TEXT"
	ColumnTypeDate  ColumnType = "DATE"
	ColumnTypeBool  ColumnType = "BOOL"
)

// Column describes one field of a table.
type Column struct {
	Name string
	Type ColumnType
}

// Numeric reports whether values of this type compare numerically.
func (t ColumnType) Numeric() bool {
	return t == ColumnTypeInt || t == ColumnTypeFloat
}

// Textual reports whether values of this type are quoted in rendered SQL.
// Dates are stored and rendered as 'YYYY-MM-DD' strings.
func (t ColumnType) Textual() bool {
	return t == ColumnTypeText || t == ColumnTypeDate
}
