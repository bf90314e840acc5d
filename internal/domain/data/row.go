package data

// Row represents a single table row.
// Key = column name, Value = cell value. A nil value is SQL NULL.
type Row map[string]interface{}

// Copy creates a copy of the row so callers can hold on to results
// without seeing later mutations.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Value returns the cell for the given column and whether the column
// is present at all. A present-but-NULL cell returns (nil, true).
func (r Row) Value(column string) (interface{}, bool) {
	v, ok := r[column]
	return v, ok
}

// IsNull reports whether the cell for the given column is NULL.
// A missing column counts as NULL.
func (r Row) IsNull(column string) bool {
	v, ok := r[column]
	return !ok || v == nil
}
