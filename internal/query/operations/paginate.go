package operations

import (
	"github.com/sqlhandbook/querysim/internal/domain/schema"
	"github.com/sqlhandbook/querysim/internal/query/params"
)

// Paginate drops the first Offset rows and keeps at most Limit rows.
// An offset past the end of the table yields an empty table, never an
// error. Limit zero keeps zero rows (as LIMIT 0 does); a negative
// limit means no limit. A nil page returns an unchanged copy.
func Paginate(table *schema.Table, p *params.Page) *schema.Table {
	if p == nil {
		return table.Clone()
	}

	out := table.Empty()

	start := p.Offset
	if start < 0 {
		start = 0
	}
	if start >= len(table.Rows) {
		return out
	}

	end := len(table.Rows)
	if p.Limit >= 0 && start+p.Limit < end {
		end = start + p.Limit
	}

	for _, row := range table.Rows[start:end] {
		out.Rows = append(out.Rows, row.Copy())
	}
	return out
}
