package params

import (
	qerrors "github.com/sqlhandbook/querysim/internal/domain/errors"
)

// Validate checks that the parameter set carries every field the
// topic's template requires. It returns a MissingParameterError for
// the first absent field so the caller can fall back instead of
// rendering malformed SQL.
func Validate(topic Topic, ps *ParameterSet) error {
	if ps == nil {
		ps = &ParameterSet{}
	}

	switch topic {
	case TopicSelect:
		// SELECT has no required parameters; empty projection means *.

	case TopicWhere:
		if ps.Filter == nil {
			return qerrors.NewMissingParameter(string(topic), "filter")
		}

	case TopicOrderBy:
		if len(ps.Sort) == 0 {
			return qerrors.NewMissingParameter(string(topic), "sort")
		}

	case TopicLimit:
		if ps.Page == nil {
			return qerrors.NewMissingParameter(string(topic), "page")
		}

	case TopicAggregate:
		if ps.Grouping == nil || len(ps.Grouping.Aggregates) == 0 {
			return qerrors.NewMissingParameter(string(topic), "aggregates")
		}

	case TopicGroupBy:
		if ps.Grouping == nil || len(ps.Grouping.Keys) == 0 {
			return qerrors.NewMissingParameter(string(topic), "grouping keys")
		}
		if len(ps.Grouping.Aggregates) == 0 {
			return qerrors.NewMissingParameter(string(topic), "aggregates")
		}

	case TopicHaving:
		if ps.Grouping == nil || len(ps.Grouping.Keys) == 0 {
			return qerrors.NewMissingParameter(string(topic), "grouping keys")
		}
		if len(ps.Grouping.Aggregates) == 0 {
			return qerrors.NewMissingParameter(string(topic), "aggregates")
		}
		if ps.Having == nil {
			return qerrors.NewMissingParameter(string(topic), "having")
		}
		if err := validateFilter(topic, ps.Having); err != nil {
			return err
		}

	case TopicWindow:
		if ps.Window == nil {
			return qerrors.NewMissingParameter(string(topic), "window")
		}
		if ps.Window.Func == "" {
			return qerrors.NewMissingParameter(string(topic), "window function")
		}
		if ps.Window.Func.NeedsColumn() && ps.Window.Column == "" {
			return qerrors.NewMissingParameter(string(topic), "window column")
		}
	}

	// A filter supplied on any topic must be complete.
	if ps.Filter != nil {
		if err := validateFilter(topic, ps.Filter); err != nil {
			return err
		}
	}
	for _, key := range ps.Sort {
		if key.Column == "" {
			return qerrors.NewMissingParameter(string(topic), "sort column")
		}
	}
	if ps.Grouping != nil {
		for _, agg := range ps.Grouping.Aggregates {
			if agg.Func == "" {
				return qerrors.NewMissingParameter(string(topic), "aggregate function")
			}
			if agg.Func != AggCount && agg.Column == "" {
				return qerrors.NewMissingParameter(string(topic), "aggregate column")
			}
		}
	}

	return nil
}

// validateFilter checks that the filter names a column, an operator
// and the operand shape the operator needs.
func validateFilter(topic Topic, f *Filter) error {
	if f.Column == "" {
		return qerrors.NewMissingParameter(string(topic), "filter column")
	}
	if f.Operator == "" {
		return qerrors.NewMissingParameter(string(topic), "filter operator")
	}

	switch f.Operator {
	case OpIsNull, OpIsNotNull:
		// No operand.
	case OpIn:
		if len(f.Values) == 0 {
			return qerrors.NewMissingParameter(string(topic), "filter values")
		}
	case OpBetween:
		if f.Low == nil || f.High == nil {
			return qerrors.NewMissingParameter(string(topic), "filter range")
		}
	default:
		if f.Value == nil {
			return qerrors.NewMissingParameter(string(topic), "filter value")
		}
	}
	return nil
}
