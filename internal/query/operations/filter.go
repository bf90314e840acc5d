// Package operations implements the relational primitives the query
// evaluator composes: filter, group/aggregate, sort, window and
// pagination over in-memory tables. Every operation is pure: the
// input table is never mutated, a new table is always returned.
package operations

import (
	"strings"

	"github.com/sqlhandbook/querysim/internal/domain/data"
	qerrors "github.com/sqlhandbook/querysim/internal/domain/errors"
	"github.com/sqlhandbook/querysim/internal/domain/schema"
	"github.com/sqlhandbook/querysim/internal/query/params"
	"github.com/sqlhandbook/querysim/internal/validation"
)

// PredicateFunc tests whether a row matches a filter condition.
type PredicateFunc func(data.Row) (bool, error)

// Filter returns a new table containing the rows that satisfy the
// filter. A nil filter keeps every row. Referencing a column the
// table does not declare fails with ColumnNotFoundError; comparing a
// textual operand against a numeric column (or vice versa) fails with
// TypeMismatchError; values are never silently coerced.
func Filter(table *schema.Table, f *params.Filter) (*schema.Table, error) {
	if f == nil {
		return table.Clone(), nil
	}

	pred, err := BuildPredicate(table, f)
	if err != nil {
		return nil, err
	}

	out := table.Empty()
	for _, row := range table.Rows {
		match, err := pred(row)
		if err != nil {
			return nil, err
		}
		if match {
			out.Rows = append(out.Rows, row.Copy())
		}
	}
	return out, nil
}

// Having applies the same predicate semantics as Filter against an
// aggregated table, where the filter column names a grouping key or
// an aggregate result column.
func Having(grouped *schema.Table, h *params.Filter) (*schema.Table, error) {
	return Filter(grouped, h)
}

// BuildPredicate compiles a filter condition into a predicate
// function, validating the column reference and operand types up
// front so the caller gets a diagnostic before any row is visited.
func BuildPredicate(table *schema.Table, f *params.Filter) (PredicateFunc, error) {
	col, ok := table.Column(f.Column)
	if !ok {
		return nil, qerrors.NewColumnNotFound(table.Name, f.Column)
	}

	switch f.Operator {
	case params.OpIsNull:
		return func(row data.Row) (bool, error) {
			return row.IsNull(col.Name), nil
		}, nil

	case params.OpIsNotNull:
		return func(row data.Row) (bool, error) {
			return !row.IsNull(col.Name), nil
		}, nil

	case params.OpLike:
		pattern, ok := f.Value.(string)
		if !ok {
			return nil, qerrors.NewTypeMismatch(col.Name, "TEXT pattern", f.Value)
		}
		return func(row data.Row) (bool, error) {
			cell, _ := row.Value(col.Name)
			if cell == nil {
				return false, nil
			}
			s, ok := cell.(string)
			if !ok {
				return false, qerrors.NewTypeMismatch(col.Name, "TEXT", cell)
			}
			return likeMatch(s, pattern), nil
		}, nil

	case params.OpIn:
		for _, v := range f.Values {
			if err := checkOperand(col, v); err != nil {
				return nil, err
			}
		}
		return func(row data.Row) (bool, error) {
			cell, _ := row.Value(col.Name)
			if cell == nil {
				return false, nil
			}
			for _, v := range f.Values {
				if data.Equal(cell, v) {
					return true, nil
				}
			}
			return false, nil
		}, nil

	case params.OpBetween:
		if err := checkOperand(col, f.Low); err != nil {
			return nil, err
		}
		if err := checkOperand(col, f.High); err != nil {
			return nil, err
		}
		return func(row data.Row) (bool, error) {
			cell, _ := row.Value(col.Name)
			if cell == nil {
				return false, nil
			}
			lo, err := compareCell(col, cell, f.Low)
			if err != nil {
				return false, err
			}
			hi, err := compareCell(col, cell, f.High)
			if err != nil {
				return false, err
			}
			// Inclusive on both ends.
			return lo >= 0 && hi <= 0, nil
		}, nil

	case params.OpEq, params.OpNotEq, params.OpGt, params.OpLt, params.OpGtEq, params.OpLtEq:
		if err := checkOperand(col, f.Value); err != nil {
			return nil, err
		}
		op := f.Operator
		return func(row data.Row) (bool, error) {
			cell, _ := row.Value(col.Name)
			if cell == nil {
				// NULL never satisfies a comparison, not even !=.
				return false, nil
			}
			c, err := compareCell(col, cell, f.Value)
			if err != nil {
				return false, err
			}
			switch op {
			case params.OpEq:
				return c == 0, nil
			case params.OpNotEq:
				return c != 0, nil
			case params.OpGt:
				return c > 0, nil
			case params.OpLt:
				return c < 0, nil
			case params.OpGtEq:
				return c >= 0, nil
			default:
				return c <= 0, nil
			}
		}, nil

	default:
		return nil, qerrors.NewMissingParameter(string(params.TopicWhere), "filter operator")
	}
}

// checkOperand verifies the literal operand is compatible with the
// column's declared type before any row is evaluated.
func checkOperand(col schema.Column, v interface{}) error {
	if v == nil {
		return qerrors.NewTypeMismatch(col.Name, string(col.Type), v)
	}
	switch {
	case col.Type.Numeric():
		if _, ok := data.AsFloat(v); !ok {
			return qerrors.NewTypeMismatch(col.Name, string(col.Type), v)
		}
	case col.Type == schema.ColumnTypeDate:
		s, ok := v.(string)
		if !ok {
			return qerrors.NewTypeMismatch(col.Name, string(col.Type), v)
		}
		if err := validation.ValidateDate(s); err != nil {
			return qerrors.NewTypeMismatch(col.Name, string(col.Type), v)
		}
	case col.Type == schema.ColumnTypeText:
		if _, ok := v.(string); !ok {
			return qerrors.NewTypeMismatch(col.Name, string(col.Type), v)
		}
	case col.Type == schema.ColumnTypeBool:
		if _, ok := v.(bool); !ok {
			return qerrors.NewTypeMismatch(col.Name, string(col.Type), v)
		}
	}
	return nil
}

// compareCell orders a non-NULL cell against a literal operand.
func compareCell(col schema.Column, cell, operand interface{}) (int, error) {
	c, ok := data.Compare(cell, operand)
	if !ok {
		return 0, qerrors.NewTypeMismatch(col.Name, string(col.Type), operand)
	}
	return c, nil
}

// likeMatch implements the LIKE subset the teaching widgets use:
// '%' matches any run of characters, every other character matches
// itself at its exact position. A pattern without '%' is an exact
// match. Matching is case-sensitive, as in a binary-collated column.
func likeMatch(s, pattern string) bool {
	parts := strings.Split(pattern, "%")
	if len(parts) == 1 {
		return s == pattern
	}

	// Anchored prefix.
	if parts[0] != "" {
		if !strings.HasPrefix(s, parts[0]) {
			return false
		}
		s = s[len(parts[0]):]
	}

	// Anchored suffix.
	last := parts[len(parts)-1]
	if last != "" {
		if !strings.HasSuffix(s, last) {
			return false
		}
		s = s[:len(s)-len(last)]
	}

	// Middle segments must appear in order.
	for _, part := range parts[1 : len(parts)-1] {
		if part == "" {
			continue
		}
		idx := strings.Index(s, part)
		if idx < 0 {
			return false
		}
		s = s[idx+len(part):]
	}
	return true
}
