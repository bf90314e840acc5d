package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlhandbook/querysim/internal/query/params"
	"github.com/sqlhandbook/querysim/internal/session"
)

func TestSession_StartsEmptyWithUniqueID(t *testing.T) {
	a := session.New()
	b := session.New()

	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, a.History())
	assert.Empty(t, a.Favorites())
}

func TestSession_HistoryAppendsNewestLast(t *testing.T) {
	s := session.New()

	s.RecordHistory(session.HistoryEntry{Query: "SELECT * FROM employees;", Topic: params.TopicSelect, Succeeded: true})
	s.RecordHistory(session.HistoryEntry{Query: "SELECT * FROM employees WHERE dept = 'IT';", Topic: params.TopicWhere, Succeeded: true})
	s.RecordHistory(session.HistoryEntry{Query: "", Topic: params.TopicWhere, Succeeded: false})

	history := s.History()
	require.Len(t, history, 3)
	assert.Equal(t, "SELECT * FROM employees;", history[0].Query)
	assert.False(t, history[2].Succeeded)
}

func TestSession_SkipsConsecutiveDuplicates(t *testing.T) {
	s := session.New()
	entry := session.HistoryEntry{Query: "SELECT * FROM employees;", Topic: params.TopicSelect, Succeeded: true}

	s.RecordHistory(entry)
	s.RecordHistory(entry)
	s.RecordHistory(session.HistoryEntry{Query: "SELECT id FROM employees;", Topic: params.TopicSelect, Succeeded: true})
	s.RecordHistory(entry)

	require.Len(t, s.History(), 3)
}

func TestSession_Favorites(t *testing.T) {
	s := session.New()

	s.AddFavorite("it staff", "SELECT * FROM employees WHERE dept = 'IT';")
	s.AddFavorite("", "SELECT COUNT(*) FROM employees;")

	favorites := s.Favorites()
	require.Len(t, favorites, 2)
	assert.Equal(t, "it staff", favorites[0].Label)
	assert.Equal(t, "Query 2", favorites[1].Label, "empty label gets a generated name")

	require.NoError(t, s.RemoveFavorite(0))
	favorites = s.Favorites()
	require.Len(t, favorites, 1)
	assert.Equal(t, "Query 2", favorites[0].Label)

	assert.Error(t, s.RemoveFavorite(5))
	assert.Error(t, s.RemoveFavorite(-1))
}

func TestSession_ListReturnsCopy(t *testing.T) {
	s := session.New()
	s.RecordHistory(session.HistoryEntry{Query: "SELECT 1;", Succeeded: true})

	history := s.History()
	history[0].Query = "mutated"

	assert.Equal(t, "SELECT 1;", s.History()[0].Query)
}

func TestSession_Clear(t *testing.T) {
	s := session.New()
	s.RecordHistory(session.HistoryEntry{Query: "SELECT 1;", Succeeded: true})
	s.AddFavorite("one", "SELECT 1;")

	s.Clear()

	assert.Empty(t, s.History())
	assert.Empty(t, s.Favorites())
}
