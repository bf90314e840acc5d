package operations

import (
	"github.com/sqlhandbook/querysim/internal/domain/data"
	qerrors "github.com/sqlhandbook/querysim/internal/domain/errors"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
	"github.com/sqlhandbook/querysim/internal/query/params"
)

// Window applies one window function and appends its values as an
// extra column. The table is first ordered by the window's ORDER BY
// keys (stable, so ties keep insertion order), then rows are walked
// per partition in that order:
//
//	ROW_NUMBER  position within the partition, starting at 1
//	RANK        ties share a rank, the next rank skips (1,1,3)
//	DENSE_RANK  ties share a rank, no gaps (1,1,2)
//	SUM / AVG   running sum / running mean of the operand column
//	LAG / LEAD  operand value of the previous / next partition row
//
// NULL operands contribute nothing to SUM and AVG but the row still
// receives the current running value. LAG on the first and LEAD on
// the last row of a partition yield NULL.
func Window(table *schema.Table, w *params.Window) (*schema.Table, error) {
	if w.PartitionBy != "" {
		if _, ok := table.Column(w.PartitionBy); !ok {
			return nil, qerrors.NewColumnNotFound(table.Name, w.PartitionBy)
		}
	}

	var operand schema.Column
	if w.Func.NeedsColumn() {
		col, ok := table.Column(w.Column)
		if !ok {
			return nil, qerrors.NewColumnNotFound(table.Name, w.Column)
		}
		if (w.Func == params.WinSum || w.Func == params.WinAvg) && !col.Type.Numeric() {
			return nil, qerrors.NewTypeMismatch(w.Column, "numeric", string(col.Type))
		}
		operand = col
	}

	out, err := Sort(table, w.OrderBy)
	if err != nil {
		return nil, err
	}
	out.Columns = append(out.Columns, windowResultColumn(w, operand))

	// Rows per partition, in sorted order.
	partitions := [][]int{}
	if w.PartitionBy == "" {
		all := make([]int, len(out.Rows))
		for i := range out.Rows {
			all[i] = i
		}
		if len(all) > 0 {
			partitions = append(partitions, all)
		}
	} else {
		index := make(map[string]int)
		for i, row := range out.Rows {
			v, _ := row.Value(w.PartitionBy)
			id := groupID([]interface{}{v})
			p, ok := index[id]
			if !ok {
				p = len(partitions)
				index[id] = p
				partitions = append(partitions, nil)
			}
			partitions[p] = append(partitions[p], i)
		}
	}

	name := w.ResultName()
	for _, rowIdxs := range partitions {
		if err := fillPartition(out, w, name, rowIdxs); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func windowResultColumn(w *params.Window, operand schema.Column) schema.Column {
	name := w.ResultName()
	switch w.Func {
	case params.WinRowNumber, params.WinRank, params.WinDenseRank:
		return schema.Column{Name: name, Type: schema.ColumnTypeInt}
	case params.WinSum, params.WinAvg:
		return schema.Column{Name: name, Type: schema.ColumnTypeFloat}
	default: // LAG / LEAD carry the operand's type
		return schema.Column{Name: name, Type: operand.Type}
	}
}

// fillPartition writes the window column for one partition's rows,
// given in evaluation order.
func fillPartition(t *schema.Table, w *params.Window, name string, rowIdxs []int) error {
	switch w.Func {
	case params.WinRowNumber:
		for n, idx := range rowIdxs {
			t.Rows[idx][name] = int64(n + 1)
		}

	case params.WinRank, params.WinDenseRank:
		rank, dense := int64(0), int64(0)
		for n, idx := range rowIdxs {
			if n == 0 || !sameSortKey(t.Rows[rowIdxs[n-1]], t.Rows[idx], w.OrderBy) {
				rank = int64(n + 1)
				dense++
			}
			if w.Func == params.WinRank {
				t.Rows[idx][name] = rank
			} else {
				t.Rows[idx][name] = dense
			}
		}

	case params.WinSum, params.WinAvg:
		sum, count := 0.0, 0
		for _, idx := range rowIdxs {
			if v, _ := t.Rows[idx].Value(w.Column); v != nil {
				f, ok := data.AsFloat(v)
				if !ok {
					return qerrors.NewTypeMismatch(w.Column, "numeric", v)
				}
				sum += f
				count++
			}
			if w.Func == params.WinSum {
				t.Rows[idx][name] = sum
			} else if count == 0 {
				t.Rows[idx][name] = nil
			} else {
				t.Rows[idx][name] = sum / float64(count)
			}
		}

	case params.WinLag, params.WinLead:
		values := make([]interface{}, len(rowIdxs))
		for n, idx := range rowIdxs {
			values[n], _ = t.Rows[idx].Value(w.Column)
		}
		for n, idx := range rowIdxs {
			var shifted interface{}
			if w.Func == params.WinLag && n > 0 {
				shifted = values[n-1]
			}
			if w.Func == params.WinLead && n < len(rowIdxs)-1 {
				shifted = values[n+1]
			}
			t.Rows[idx][name] = shifted
		}

	default:
		return qerrors.NewMissingParameter(string(params.TopicWindow), "window function")
	}
	return nil
}

// sameSortKey reports whether two rows tie on every ORDER BY key.
func sameSortKey(a, b data.Row, keys []params.SortKey) bool {
	for _, key := range keys {
		av, _ := a.Value(key.Column)
		bv, _ := b.Value(key.Column)
		if !data.Equal(av, bv) {
			return false
		}
	}
	return true
}
