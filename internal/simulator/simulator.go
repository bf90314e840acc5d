// Package simulator ties the renderer and the evaluator together into
// the single synchronous cycle behind every widget interaction:
// render the SQL text, run the relational pipeline against the sample
// table, hand both back to the presentation surface. Errors are
// carried as values in the Result so one bad interaction can never
// take the view down or corrupt session state.
package simulator

import (
	"time"

	"github.com/sqlhandbook/querysim/internal/domain/schema"
	"github.com/sqlhandbook/querysim/internal/query/operations"
	"github.com/sqlhandbook/querysim/internal/query/params"
	"github.com/sqlhandbook/querysim/internal/query/render"
)

// Result is the outbound triple for the presentation surface: the
// rendered SQL text, the evaluated table and an optional diagnostic.
// An empty Table with a nil Err is a valid zero-row result, not a
// failure.
type Result struct {
	Query string
	Table *schema.Table
	Err   error
}

// Failed reports whether the interaction produced a diagnostic.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Simulator runs simulated queries. It is stateless apart from its
// configuration; the same inputs always produce the same Result.
type Simulator struct {
	observers  []Observer
	groupOrder operations.GroupOrder
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithObserver subscribes an observer to lifecycle events.
func WithObserver(o Observer) Option {
	return func(s *Simulator) {
		s.observers = append(s.observers, o)
	}
}

// WithGroupOrder selects how grouped results are ordered.
func WithGroupOrder(order operations.GroupOrder) Option {
	return func(s *Simulator) {
		s.groupOrder = order
	}
}

// New creates a Simulator. The default group order is first
// appearance of each key tuple.
func New(opts ...Option) *Simulator {
	s := &Simulator{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one interaction: render, then evaluate in the fixed
// relational order (filter, group/aggregate, having, window, sort,
// paginate, project). The input table is never mutated. A rendering
// failure skips evaluation; the rendered text of an evaluation
// failure is still returned so the presentation layer can show what
// was attempted.
func (s *Simulator) Run(sessionID string, table *schema.Table, topic params.Topic, ps *params.ParameterSet) Result {
	s.emit(EventRenderStart, sessionID, map[string]interface{}{"topic": topic})
	query, err := render.Render(table, topic, ps)
	s.emit(EventRenderEnd, sessionID, map[string]interface{}{"topic": topic, "query": query, "error": errText(err)})
	if err != nil {
		return Result{Err: err}
	}

	s.emit(EventEvalStart, sessionID, map[string]interface{}{"topic": topic, "rows_in": table.Len()})
	result, err := s.evaluate(table, ps)
	rowsOut := 0
	if result != nil {
		rowsOut = result.Len()
	}
	s.emit(EventEvalEnd, sessionID, map[string]interface{}{"topic": topic, "rows_out": rowsOut, "error": errText(err)})
	if err != nil {
		return Result{Query: query, Err: err}
	}

	return Result{Query: query, Table: result}
}

// evaluate applies the relational pipeline to a clone of the table.
func (s *Simulator) evaluate(table *schema.Table, ps *params.ParameterSet) (*schema.Table, error) {
	if ps == nil {
		ps = &params.ParameterSet{}
	}

	current, err := operations.Filter(table, ps.Filter)
	if err != nil {
		return nil, err
	}

	grouped := ps.Grouping != nil
	if grouped {
		current, err = operations.Group(current, ps.Grouping, s.groupOrder)
		if err != nil {
			return nil, err
		}
		if ps.Having != nil {
			current, err = operations.Having(current, ps.Having)
			if err != nil {
				return nil, err
			}
		}
	}

	if ps.Window != nil {
		current, err = operations.Window(current, ps.Window)
		if err != nil {
			return nil, err
		}
	}

	if len(ps.Sort) > 0 {
		current, err = operations.Sort(current, ps.Sort)
		if err != nil {
			return nil, err
		}
	}

	current = operations.Paginate(current, ps.Page)

	// A grouped result already carries exactly its key and aggregate
	// columns; projection only applies to plain row queries. The
	// window column always survives projection, matching the rendered
	// SELECT list.
	if !grouped && len(ps.Columns) > 0 {
		columns := ps.Columns
		if ps.Window != nil {
			columns = append(append([]string{}, columns...), ps.Window.ResultName())
		}
		current, err = operations.Project(current, columns)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}

func (s *Simulator) emit(eventType EventType, sessionID string, data interface{}) {
	if len(s.observers) == 0 {
		return
	}
	event := Event{
		Type:      eventType,
		SessionID: sessionID,
		Timestamp: time.Now(),
		Data:      data,
	}
	for _, o := range s.observers {
		o.OnEvent(event)
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
