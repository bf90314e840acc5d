package operations

import (
	"github.com/sqlhandbook/querysim/internal/domain/data"
	qerrors "github.com/sqlhandbook/querysim/internal/domain/errors"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
)

// Project returns a new table restricted to the requested columns, in
// the requested order. An empty column list means SELECT * and
// returns a full copy. Requesting an undeclared column fails with
// ColumnNotFoundError.
func Project(table *schema.Table, columns []string) (*schema.Table, error) {
	if len(columns) == 0 {
		return table.Clone(), nil
	}

	projected := make([]schema.Column, len(columns))
	for i, name := range columns {
		col, ok := table.Column(name)
		if !ok {
			return nil, qerrors.NewColumnNotFound(table.Name, name)
		}
		projected[i] = col
	}

	out := schema.NewTable(table.Name, projected)
	for _, row := range table.Rows {
		narrow := make(data.Row, len(columns))
		for _, name := range columns {
			narrow[name], _ = row.Value(name)
		}
		out.Rows = append(out.Rows, narrow)
	}
	return out, nil
}
