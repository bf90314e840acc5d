// Package session holds the per-session query assistant state: the
// history of executed renderings and the user-curated favorites. Both
// are plain in-memory lists created empty at session start and
// discarded at session end; nothing here is ever persisted.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sqlhandbook/querysim/internal/query/params"
)

// HistoryEntry records one executed rendering, newest last.
type HistoryEntry struct {
	Query     string
	Topic     params.Topic
	Succeeded bool
	At        time.Time
}

// Favorite is a user-curated saved query with a label.
type Favorite struct {
	Label string
	Query string
	At    time.Time
}

// Session is the state of one user session. Sessions never share
// mutable state with one another, and each interaction within a
// session runs to completion before the next starts, so no locking
// is needed.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	history   []HistoryEntry
	favorites []Favorite
}

// New creates an empty session with a fresh unique ID.
func New() *Session {
	return &Session{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
}

// RecordHistory appends an entry. A consecutive repeat of the same
// query text is skipped so clicking "run" twice in a row does not
// fill the list with duplicates.
func (s *Session) RecordHistory(entry HistoryEntry) {
	if n := len(s.history); n > 0 && s.history[n-1].Query == entry.Query {
		return
	}
	s.history = append(s.history, entry)
}

// History returns a copy of the history, oldest first.
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// AddFavorite saves a query under the given label. An empty label
// gets a generated "Query N" name, the way the editor page does it.
func (s *Session) AddFavorite(label, query string) {
	if label == "" {
		label = fmt.Sprintf("Query %d", len(s.favorites)+1)
	}
	s.favorites = append(s.favorites, Favorite{
		Label: label,
		Query: query,
		At:    time.Now(),
	})
}

// Favorites returns a copy of the saved queries in insertion order.
func (s *Session) Favorites() []Favorite {
	out := make([]Favorite, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// RemoveFavorite deletes the favorite at the given position.
func (s *Session) RemoveFavorite(index int) error {
	if index < 0 || index >= len(s.favorites) {
		return fmt.Errorf("favorite index %d out of range (have %d)", index, len(s.favorites))
	}
	s.favorites = append(s.favorites[:index], s.favorites[index+1:]...)
	return nil
}

// Clear empties history and favorites, as at session end.
func (s *Session) Clear() {
	s.history = nil
	s.favorites = nil
}
