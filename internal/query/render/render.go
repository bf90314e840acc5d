// Package render turns a parameter set into the display-only SQL text
// shown next to each widget. Rendering is pure and deterministic: the
// same topic and parameters always produce the same string, and the
// string is never parsed back or executed anywhere.
package render

import (
	"fmt"
	"strings"

	"github.com/sqlhandbook/querysim/internal/domain/schema"
	"github.com/sqlhandbook/querysim/internal/query/params"
)

// Render produces the SQL text for one topic and parameter set. The
// table supplies the FROM name and the column types that drive value
// quoting. A parameter set missing a field the topic requires fails
// with MissingParameterError instead of emitting malformed SQL.
func Render(table *schema.Table, topic params.Topic, ps *params.ParameterSet) (string, error) {
	if err := params.Validate(topic, ps); err != nil {
		return "", err
	}
	if ps == nil {
		ps = &params.ParameterSet{}
	}

	var clauses []string
	clauses = append(clauses, "SELECT "+selectList(table, ps))
	clauses = append(clauses, "FROM "+table.Name)

	if ps.Filter != nil {
		clauses = append(clauses, "WHERE "+condition(table, ps.Filter))
	}
	if ps.Grouping != nil && len(ps.Grouping.Keys) > 0 {
		clauses = append(clauses, "GROUP BY "+strings.Join(ps.Grouping.Keys, ", "))
	}
	if ps.Having != nil {
		clauses = append(clauses, "HAVING "+havingCondition(ps))
	}
	if len(ps.Sort) > 0 {
		clauses = append(clauses, "ORDER BY "+sortList(ps.Sort))
	}
	if ps.Page != nil {
		limit := fmt.Sprintf("LIMIT %d", ps.Page.Limit)
		if ps.Page.Offset > 0 {
			limit += fmt.Sprintf(" OFFSET %d", ps.Page.Offset)
		}
		clauses = append(clauses, limit)
	}

	return strings.Join(clauses, " ") + ";", nil
}

// selectList builds the projection part of the SELECT clause.
func selectList(table *schema.Table, ps *params.ParameterSet) string {
	if ps.Grouping != nil {
		parts := make([]string, 0, len(ps.Grouping.Keys)+len(ps.Grouping.Aggregates))
		parts = append(parts, ps.Grouping.Keys...)
		for _, agg := range ps.Grouping.Aggregates {
			parts = append(parts, fmt.Sprintf("%s AS %s", agg.Expr(), agg.ResultName()))
		}
		return strings.Join(parts, ", ")
	}

	base := "*"
	if len(ps.Columns) > 0 {
		base = strings.Join(ps.Columns, ", ")
	}
	if ps.Window != nil {
		return base + ", " + windowExpr(ps.Window)
	}
	return base
}

// windowExpr builds "FUNC(col) OVER (...) AS name".
func windowExpr(w *params.Window) string {
	fn := string(w.Func) + "()"
	if w.Func.NeedsColumn() {
		fn = fmt.Sprintf("%s(%s)", w.Func, w.Column)
	}

	var over []string
	if w.PartitionBy != "" {
		over = append(over, "PARTITION BY "+w.PartitionBy)
	}
	if len(w.OrderBy) > 0 {
		over = append(over, "ORDER BY "+sortList(w.OrderBy))
	}

	return fmt.Sprintf("%s OVER (%s) AS %s", fn, strings.Join(over, " "), w.ResultName())
}

// sortList renders ORDER BY keys with the direction always explicit,
// so a rendered multi-level sort is never ambiguous.
func sortList(keys []params.SortKey) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		dir := "ASC"
		if !key.Ascending {
			dir = "DESC"
		}
		parts[i] = key.Column + " " + dir
	}
	return strings.Join(parts, ", ")
}

// condition renders one WHERE condition with type-driven quoting.
func condition(table *schema.Table, f *params.Filter) string {
	col, _ := table.Column(f.Column)

	switch f.Operator {
	case params.OpIsNull, params.OpIsNotNull:
		return fmt.Sprintf("%s %s", f.Column, f.Operator)

	case params.OpLike:
		pattern := fmt.Sprintf("%v", f.Value)
		// The widgets search for "contains" unless the chosen example
		// already anchors the pattern itself.
		if !strings.Contains(pattern, "%") {
			pattern = "%" + pattern + "%"
		}
		return fmt.Sprintf("%s LIKE %s", f.Column, quote(pattern))

	case params.OpIn:
		values := make([]string, len(f.Values))
		for i, v := range f.Values {
			values[i] = literal(col, v)
		}
		return fmt.Sprintf("%s IN (%s)", f.Column, strings.Join(values, ", "))

	case params.OpBetween:
		return fmt.Sprintf("%s BETWEEN %s AND %s", f.Column, literal(col, f.Low), literal(col, f.High))

	default:
		return fmt.Sprintf("%s %s %s", f.Column, f.Operator, literal(col, f.Value))
	}
}

// havingCondition renders the HAVING clause. When the filter column
// names an aggregate's result, the aggregate expression itself is
// rendered, the way the lessons write it (HAVING COUNT(*) > 5).
func havingCondition(ps *params.ParameterSet) string {
	h := *ps.Having
	left := h.Column
	if ps.Grouping != nil {
		for _, agg := range ps.Grouping.Aggregates {
			if agg.ResultName() == h.Column {
				left = agg.Expr()
				break
			}
		}
	}

	// HAVING operands compare against aggregate values, which are
	// numeric in every template, so no column lookup is needed.
	switch h.Operator {
	case params.OpBetween:
		return fmt.Sprintf("%s BETWEEN %s AND %s", left, bare(h.Low), bare(h.High))
	default:
		return fmt.Sprintf("%s %s %s", left, h.Operator, bare(h.Value))
	}
}

// literal formats a value for SQL text. Columns declared TEXT or DATE
// quote their values; numeric columns render bare. When the column is
// unknown the Go kind of the value decides.
func literal(col schema.Column, v interface{}) string {
	if v == nil {
		return "NULL"
	}
	if col.Type != "" {
		if col.Type.Textual() {
			return quote(fmt.Sprintf("%v", v))
		}
		return bare(v)
	}
	if s, ok := v.(string); ok {
		return quote(s)
	}
	return bare(v)
}

// bare formats a value without quoting.
func bare(v interface{}) string {
	switch n := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if n {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", n), "0"), ".")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// quote wraps a string in single quotes, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
