// Package params defines the structured record of user-chosen query
// options for one simulated SQL statement. A ParameterSet is built
// fresh from UI input on every interaction, treated as immutable once
// handed to the renderer and evaluator, and discarded afterwards.
package params

import (
	"fmt"
	"strings"
)

// Topic identifies one teaching module. Each topic has its own query
// template and evaluation subset.
type Topic string

const (
	TopicSelect    Topic = "SELECT"
	TopicWhere     Topic = "WHERE"
	TopicOrderBy   Topic = "ORDER_BY"
	TopicLimit     Topic = "LIMIT"
	TopicAggregate Topic = "AGGREGATE"
	TopicGroupBy   Topic = "GROUP_BY"
	TopicHaving    Topic = "HAVING"
	TopicWindow    Topic = "WINDOW"
)

// Operator is a closed set of filter comparison operators.
type Operator string

const (
	OpEq        Operator = "="
	OpNotEq     Operator = "!="
	OpGt        Operator = ">"
	OpLt        Operator = "<"
	OpGtEq      Operator = ">="
	OpLtEq      Operator = "<="
	OpLike      Operator = "LIKE"
	OpIn        Operator = "IN"
	OpBetween   Operator = "BETWEEN"
	OpIsNull    Operator = "IS NULL"
	OpIsNotNull Operator = "IS NOT NULL"
)

// AggregateFunc is a closed set of aggregate functions.
type AggregateFunc string

const (
	AggCount AggregateFunc = "COUNT"
	AggSum   AggregateFunc = "SUM"
	AggAvg   AggregateFunc = "AVG"
	AggMin   AggregateFunc = "MIN"
	AggMax   AggregateFunc = "MAX"
)

// WindowFunc is a closed set of window functions.
type WindowFunc string

const (
	WinRowNumber WindowFunc = "ROW_NUMBER"
	WinRank      WindowFunc = "RANK"
	WinDenseRank WindowFunc = "DENSE_RANK"
	WinSum       WindowFunc = "SUM"
	WinAvg       WindowFunc = "AVG"
	WinLag       WindowFunc = "LAG"
	WinLead      WindowFunc = "LEAD"
)

// NeedsColumn reports whether the window function takes a column operand.
func (f WindowFunc) NeedsColumn() bool {
	switch f {
	case WinSum, WinAvg, WinLag, WinLead:
		return true
	}
	return false
}

// Filter captures one WHERE (or HAVING) condition.
// Which operand field is consulted depends on Operator:
// Value for the comparison operators and LIKE, Values for IN,
// Low/High for BETWEEN, none for the null checks.
type Filter struct {
	Column   string
	Operator Operator
	Value    interface{}
	Values   []interface{}
	Low      interface{}
	High     interface{}
}

// SortKey is one ORDER BY key. Direction is always explicit.
type SortKey struct {
	Column    string
	Ascending bool
}

// AggregateSpec is one requested aggregate. An empty Column with
// AggCount means COUNT(*). Alias, when empty, derives a column name
// from the function and target (e.g. "avg_salary").
type AggregateSpec struct {
	Func     AggregateFunc
	Column   string
	Alias    string
	Distinct bool
}

// ResultName returns the column name the aggregate produces.
func (a AggregateSpec) ResultName() string {
	if a.Alias != "" {
		return a.Alias
	}
	if a.Column == "" {
		return strings.ToLower(string(a.Func))
	}
	return fmt.Sprintf("%s_%s", strings.ToLower(string(a.Func)), a.Column)
}

// Expr returns the SQL expression text for the aggregate.
func (a AggregateSpec) Expr() string {
	target := a.Column
	if target == "" {
		target = "*"
	}
	if a.Distinct {
		target = "DISTINCT " + target
	}
	return fmt.Sprintf("%s(%s)", a.Func, target)
}

// Grouping captures GROUP BY keys plus the aggregates to compute.
// Empty Keys with non-empty Aggregates means a whole-table aggregate
// (one result row).
type Grouping struct {
	Keys       []string
	Aggregates []AggregateSpec
}

// Page captures LIMIT/OFFSET. Limit zero keeps zero rows; an offset
// past the end of the table yields an empty result, never an error.
type Page struct {
	Limit  int
	Offset int
}

// Window captures one window function application. The result is
// appended as an extra column named As ("window_result" by default).
type Window struct {
	Func        WindowFunc
	Column      string
	PartitionBy string
	OrderBy     []SortKey
	As          string
}

// ResultName returns the name of the appended window column.
func (w Window) ResultName() string {
	if w.As != "" {
		return w.As
	}
	return "window_result"
}

// ParameterSet is the full set of enumerated choices for one
// interaction. The presentation layer applies defaults before
// handing it over; fields a topic does not use stay nil.
type ParameterSet struct {
	Columns  []string // projection; empty means SELECT *
	Filter   *Filter
	Sort     []SortKey
	Grouping *Grouping
	Having   *Filter
	Page     *Page
	Window   *Window
}
