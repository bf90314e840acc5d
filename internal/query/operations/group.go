package operations

import (
	"fmt"
	"strings"

	"github.com/sqlhandbook/querysim/internal/domain/data"
	qerrors "github.com/sqlhandbook/querysim/internal/domain/errors"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
	"github.com/sqlhandbook/querysim/internal/query/params"
)

// GroupOrder selects how result groups are ordered. The teaching
// material is not consistent about this, so it is an explicit option
// rather than a single hard-wired rule.
type GroupOrder int

const (
	// GroupOrderFirstSeen emits groups in order of first appearance
	// of their key tuple in the input. Default.
	GroupOrderFirstSeen GroupOrder = iota
	// GroupOrderByKey emits groups sorted ascending by key tuple.
	GroupOrderByKey
)

// Group partitions the table by the tuple of grouping-key values and
// computes the requested aggregates per partition. Groups are
// identified by value, never by position. With no keys the whole
// table forms a single group, so an aggregate over an empty table
// still yields one row (COUNT 0, NULL for the rest).
//
// COUNT(*) counts rows; COUNT(col) counts non-NULL values; SUM, AVG,
// MIN and MAX skip NULLs entirely. AVG over zero non-NULL values is
// NULL. The result table has one row per distinct key tuple, with the
// key columns followed by one column per aggregate.
func Group(table *schema.Table, g *params.Grouping, order GroupOrder) (*schema.Table, error) {
	keyCols := make([]schema.Column, len(g.Keys))
	for i, key := range g.Keys {
		col, ok := table.Column(key)
		if !ok {
			return nil, qerrors.NewColumnNotFound(table.Name, key)
		}
		keyCols[i] = col
	}

	resultCols := make([]schema.Column, 0, len(keyCols)+len(g.Aggregates))
	resultCols = append(resultCols, keyCols...)
	for _, agg := range g.Aggregates {
		col, err := aggregateResultColumn(table, agg)
		if err != nil {
			return nil, err
		}
		resultCols = append(resultCols, col)
	}

	// Partition preserving first-appearance order.
	type partition struct {
		keyValues []interface{}
		rows      []data.Row
	}
	var groups []*partition
	index := make(map[string]*partition)

	for _, row := range table.Rows {
		keyValues := make([]interface{}, len(g.Keys))
		for i, key := range g.Keys {
			keyValues[i], _ = row.Value(key)
		}
		id := groupID(keyValues)
		p, ok := index[id]
		if !ok {
			p = &partition{keyValues: keyValues}
			index[id] = p
			groups = append(groups, p)
		}
		p.rows = append(p.rows, row)
	}

	// A whole-table aggregate always produces one row.
	if len(g.Keys) == 0 && len(groups) == 0 {
		groups = append(groups, &partition{})
	}

	out := schema.NewTable(table.Name, resultCols)
	for _, p := range groups {
		row := make(data.Row, len(resultCols))
		for i, key := range g.Keys {
			row[key] = p.keyValues[i]
		}
		for _, agg := range g.Aggregates {
			value, err := computeAggregate(table, agg, p.rows)
			if err != nil {
				return nil, err
			}
			row[agg.ResultName()] = value
		}
		out.Rows = append(out.Rows, row)
	}

	if order == GroupOrderByKey && len(g.Keys) > 0 {
		keys := make([]params.SortKey, len(g.Keys))
		for i, key := range g.Keys {
			keys[i] = params.SortKey{Column: key, Ascending: true}
		}
		return Sort(out, keys)
	}
	return out, nil
}

// aggregateResultColumn determines the schema column an aggregate
// produces, validating its target column reference.
func aggregateResultColumn(table *schema.Table, agg params.AggregateSpec) (schema.Column, error) {
	name := agg.ResultName()

	if agg.Column == "" {
		if agg.Func != params.AggCount {
			return schema.Column{}, qerrors.NewMissingParameter(string(params.TopicAggregate), "aggregate column")
		}
		return schema.Column{Name: name, Type: schema.ColumnTypeInt}, nil
	}

	col, ok := table.Column(agg.Column)
	if !ok {
		return schema.Column{}, qerrors.NewColumnNotFound(table.Name, agg.Column)
	}

	switch agg.Func {
	case params.AggCount:
		return schema.Column{Name: name, Type: schema.ColumnTypeInt}, nil
	case params.AggAvg:
		if !col.Type.Numeric() {
			return schema.Column{}, qerrors.NewTypeMismatch(agg.Column, "numeric", string(col.Type))
		}
		return schema.Column{Name: name, Type: schema.ColumnTypeFloat}, nil
	case params.AggSum:
		if !col.Type.Numeric() {
			return schema.Column{}, qerrors.NewTypeMismatch(agg.Column, "numeric", string(col.Type))
		}
		return schema.Column{Name: name, Type: col.Type}, nil
	case params.AggMin, params.AggMax:
		return schema.Column{Name: name, Type: col.Type}, nil
	default:
		return schema.Column{}, qerrors.NewMissingParameter(string(params.TopicAggregate), "aggregate function")
	}
}

// computeAggregate evaluates one aggregate over a partition's rows.
func computeAggregate(table *schema.Table, agg params.AggregateSpec, rows []data.Row) (interface{}, error) {
	// COUNT(*): every row counts, NULLs included.
	if agg.Column == "" {
		return int64(len(rows)), nil
	}

	values := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		if v, _ := row.Value(agg.Column); v != nil {
			values = append(values, v)
		}
	}
	if agg.Distinct {
		values = distinctValues(values)
	}

	col, _ := table.Column(agg.Column)

	switch agg.Func {
	case params.AggCount:
		return int64(len(values)), nil

	case params.AggSum:
		sum := 0.0
		for _, v := range values {
			f, ok := data.AsFloat(v)
			if !ok {
				return nil, qerrors.NewTypeMismatch(agg.Column, "numeric", v)
			}
			sum += f
		}
		if len(values) == 0 {
			return nil, nil
		}
		if col.Type == schema.ColumnTypeInt {
			return int64(sum), nil
		}
		return sum, nil

	case params.AggAvg:
		if len(values) == 0 {
			return nil, nil
		}
		sum := 0.0
		for _, v := range values {
			f, ok := data.AsFloat(v)
			if !ok {
				return nil, qerrors.NewTypeMismatch(agg.Column, "numeric", v)
			}
			sum += f
		}
		return sum / float64(len(values)), nil

	case params.AggMin, params.AggMax:
		if len(values) == 0 {
			return nil, nil
		}
		best := values[0]
		for _, v := range values[1:] {
			c, ok := data.Compare(v, best)
			if !ok {
				return nil, qerrors.NewTypeMismatch(agg.Column, string(col.Type), v)
			}
			if (agg.Func == params.AggMin && c < 0) || (agg.Func == params.AggMax && c > 0) {
				best = v
			}
		}
		return best, nil

	default:
		return nil, qerrors.NewMissingParameter(string(params.TopicAggregate), "aggregate function")
	}
}

// distinctValues drops duplicates, keeping first appearances.
func distinctValues(values []interface{}) []interface{} {
	seen := make(map[string]struct{}, len(values))
	out := values[:0:0]
	for _, v := range values {
		id := groupID([]interface{}{v})
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, v)
	}
	return out
}

// groupID builds a value-identity key for a tuple of cells. Numeric
// cells are normalized so int64(2) and float64(2) land in the same
// group.
func groupID(values []interface{}) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(0x1f)
		}
		if f, ok := data.AsFloat(v); ok {
			fmt.Fprintf(&b, "n:%g", f)
			continue
		}
		fmt.Fprintf(&b, "%T:%v", v, v)
	}
	return b.String()
}
