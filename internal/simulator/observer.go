package simulator

import "time"

// EventType represents the lifecycle phases of one simulated query.
type EventType string

const (
	EventRenderStart EventType = "render_start"
	EventRenderEnd   EventType = "render_end"
	EventEvalStart   EventType = "eval_start"
	EventEvalEnd     EventType = "eval_end"
)

// Event is one lifecycle event of a simulation run.
type Event struct {
	Type      EventType
	SessionID string      // session the interaction belongs to
	Timestamp time.Time   // when the event occurred
	Data      interface{} // phase-specific data (topic, query text, row counts)
}

// Observer receives events at the major phases of a simulation run.
type Observer interface {
	OnEvent(event Event)
}
