package operations

import (
	"sort"

	"github.com/sqlhandbook/querysim/internal/domain/data"
	qerrors "github.com/sqlhandbook/querysim/internal/domain/errors"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
	"github.com/sqlhandbook/querysim/internal/query/params"
)

// Sort returns a new table ordered by the given keys, applied in
// order. The sort is stable: rows equal on every key keep their
// relative input (insertion) order, which the multi-level sort
// lessons depend on. NULL sorts before any non-NULL value when
// ascending, after it when descending. An empty key list returns an
// unchanged copy.
func Sort(table *schema.Table, keys []params.SortKey) (*schema.Table, error) {
	out := table.Clone()
	if len(keys) == 0 {
		return out, nil
	}

	columns := make([]schema.Column, len(keys))
	for i, key := range keys {
		col, ok := table.Column(key.Column)
		if !ok {
			return nil, qerrors.NewColumnNotFound(table.Name, key.Column)
		}
		columns[i] = col
	}

	var sortErr error
	sort.SliceStable(out.Rows, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		a, b := out.Rows[i], out.Rows[j]
		for k, key := range keys {
			av, _ := a.Value(key.Column)
			bv, _ := b.Value(key.Column)
			c, ok := data.Compare(av, bv)
			if !ok {
				sortErr = qerrors.NewTypeMismatch(key.Column, string(columns[k].Type), bv)
				return false
			}
			if c == 0 {
				continue
			}
			if key.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return out, nil
}
