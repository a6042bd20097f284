package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-scorer/internal/types"
)

func storedSession(id string, createdAt time.Time) *Session {
	return &Session{
		ID:             id,
		CandidateName:  "Dana",
		Status:         StatusActive,
		TotalQuestions: 5,
		CreatedAt:      createdAt,
	}
}

func TestMemoryStore_GetUnknownID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("nope")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_PutThenGet(t *testing.T) {
	store := NewMemoryStore()
	session := storedSession("s1", time.Now().UTC())

	require.NoError(t, store.Put(session))
	got, err := store.Get("s1")

	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.CandidateName, got.CandidateName)
}

func TestMemoryStore_GetReturnsPrivateCopy(t *testing.T) {
	store := NewMemoryStore()
	session := storedSession("s1", time.Now().UTC())
	session.Candidate = &types.CandidateRecord{Skills: []string{"go"}}
	require.NoError(t, store.Put(session))

	got, err := store.Get("s1")
	require.NoError(t, err)
	got.CandidateName = "Mutated"
	got.Candidate.Skills[0] = "mutated"
	got.Questions = append(got.Questions, Question{ID: "q-extra"})

	fresh, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "Dana", fresh.CandidateName)
	assert.Equal(t, []string{"go"}, fresh.Candidate.Skills)
	assert.Empty(t, fresh.Questions)
}

func TestMemoryStore_PutDetachesFromCaller(t *testing.T) {
	store := NewMemoryStore()
	session := storedSession("s1", time.Now().UTC())
	require.NoError(t, store.Put(session))

	session.CandidateName = "Changed after put"

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, "Dana", got.CandidateName)
}

func TestMemoryStore_PutReplacesExisting(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(storedSession("s1", time.Now().UTC())))

	updated := storedSession("s1", time.Now().UTC())
	updated.Status = StatusCompleted
	require.NoError(t, store.Put(updated))

	got, err := store.Get("s1")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
}

func TestMemoryStore_ListOldestFirst(t *testing.T) {
	store := NewMemoryStore()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(storedSession("newer", base.Add(time.Hour))))
	require.NoError(t, store.Put(storedSession("older", base)))
	require.NoError(t, store.Put(storedSession("middle", base.Add(30*time.Minute))))

	sessions := store.List()

	require.Len(t, sessions, 3)
	assert.Equal(t, "older", sessions[0].ID)
	assert.Equal(t, "middle", sessions[1].ID)
	assert.Equal(t, "newer", sessions[2].ID)
}

func TestMemoryStore_ListBreaksTiesByID(t *testing.T) {
	store := NewMemoryStore()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(storedSession("b", at)))
	require.NoError(t, store.Put(storedSession("a", at)))

	sessions := store.List()

	require.Len(t, sessions, 2)
	assert.Equal(t, "a", sessions[0].ID)
	assert.Equal(t, "b", sessions[1].ID)
}

func TestMemoryStore_DeleteRemovesSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(storedSession("s1", time.Now().UTC())))

	require.NoError(t, store.Delete("s1"))

	_, err := store.Get("s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_DeleteUnknownID(t *testing.T) {
	store := NewMemoryStore()

	err := store.Delete("nope")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_PruneExpired(t *testing.T) {
	store := NewMemoryStore()
	cutoff := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Put(storedSession("stale", cutoff.Add(-time.Minute))))
	require.NoError(t, store.Put(storedSession("fresh", cutoff.Add(time.Minute))))

	pruned := store.PruneExpired(cutoff)

	assert.Equal(t, 1, pruned)
	_, err := store.Get("stale")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get("fresh")
	assert.NoError(t, err)
}

func TestSessionClone_NilReceiver(t *testing.T) {
	var session *Session

	assert.Nil(t, session.Clone())
}
