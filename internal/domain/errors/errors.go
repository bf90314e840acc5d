package errors

import "fmt"

// MissingParameterError reports that a parameter set lacks a field the
// topic's query template requires. The renderer returns it instead of
// emitting malformed SQL text.
type MissingParameterError struct {
	Topic     string // topic whose template could not be filled
	Parameter string // name of the absent parameter
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("topic %s: missing required parameter %q", e.Topic, e.Parameter)
}

// NewMissingParameter creates a MissingParameterError.
func NewMissingParameter(topic, parameter string) *MissingParameterError {
	return &MissingParameterError{Topic: topic, Parameter: parameter}
}

// ColumnNotFoundError reports a reference to a column the table does
// not declare. Never produced for an empty result, which is valid.
type ColumnNotFoundError struct {
	Table  string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in table %q", e.Column, e.Table)
}

// NewColumnNotFound creates a ColumnNotFoundError.
func NewColumnNotFound(table, column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{Table: table, Column: column}
}

// TypeMismatchError reports a comparison between incompatible scalar
// kinds, e.g. a textual literal against a numeric column. Values are
// never silently coerced.
type TypeMismatchError struct {
	Column   string      // column involved in the comparison
	Expected string      // expected type, in column-type terms
	Value    interface{} // offending value (may be nil)
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("column %q: expected %s, got %T (%v)", e.Column, e.Expected, e.Value, e.Value)
}

// NewTypeMismatch creates a TypeMismatchError.
func NewTypeMismatch(column, expected string, value interface{}) *TypeMismatchError {
	return &TypeMismatchError{Column: column, Expected: expected, Value: value}
}
