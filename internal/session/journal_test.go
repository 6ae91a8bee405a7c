// ABOUTME: Tests for session state and cache consistency
// ABOUTME: Verifies the cached collection stays in lockstep with the store

package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chroniclehq/chronicle/internal/query"
	"github.com/chroniclehq/chronicle/internal/storage"
)

func newTestJournal(t *testing.T) (*Journal, storage.Store) {
	t.Helper()
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	j, err := Open(store)
	require.NoError(t, err)
	return j, store
}

func TestAddRefreshesCache(t *testing.T) {
	j, store := newTestJournal(t)

	entry, err := j.Add("Beach day", "<p>sand</p>", []string{"travel"}, "Summer")
	require.NoError(t, err)

	// Cache reflects the write before Add returns, no manual refresh.
	assert.Equal(t, 1, j.Len())
	assert.Equal(t, entry.ID, j.Entries()[0].ID)

	// And the durable copy matches.
	stored, err := store.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beach day", stored.Title)
}

func TestUpdatePatchesAndTouches(t *testing.T) {
	j, _ := newTestJournal(t)

	entry, err := j.Add("draft", "<p>v1</p>", nil, "")
	require.NoError(t, err)
	before := entry.LastModified

	newContent := "<p>v2</p>"
	updated, err := j.Update(entry.ID, Update{Content: &newContent})
	require.NoError(t, err)

	assert.Equal(t, "draft", updated.Title, "unset fields keep their values")
	assert.Equal(t, "<p>v2</p>", updated.Content)
	assert.True(t, updated.LastModified.After(before), "LastModified must strictly increase")
	assert.True(t, updated.Date.Equal(entry.Date), "Date is immutable")

	// Cache in lockstep.
	cached := j.Entries()[0]
	assert.Equal(t, "<p>v2</p>", cached.Content)
}

func TestUpdateMissingEntry(t *testing.T) {
	j, _ := newTestJournal(t)

	title := "ghost"
	_, err := j.Update("no-such-id", Update{Title: &title})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteClearsCurrentAndCache(t *testing.T) {
	j, store := newTestJournal(t)

	entry, err := j.Add("doomed", "", nil, "")
	require.NoError(t, err)
	require.NoError(t, j.SetCurrent(entry.ID))

	require.NoError(t, j.Delete(entry.ID))

	assert.Equal(t, 0, j.Len())
	assert.Nil(t, j.Current())

	stored, err := store.Get(entry.ID)
	require.NoError(t, err)
	assert.Nil(t, stored, "hard delete expected")
}

func TestSetCurrentPersistsLastOpenEntry(t *testing.T) {
	j, store := newTestJournal(t)

	entry, err := j.Add("open me", "", nil, "")
	require.NoError(t, err)
	require.NoError(t, j.SetCurrent(entry.ID))

	value, ok, err := store.GetSetting(SettingLastOpenEntry)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entry.ID, value)
}

func TestOpenRestoresLastOpenEntry(t *testing.T) {
	j, store := newTestJournal(t)
	entry, err := j.Add("resume here", "", nil, "")
	require.NoError(t, err)
	require.NoError(t, j.SetCurrent(entry.ID))

	// A second session against the same store resumes where we left off.
	j2, err := Open(store)
	require.NoError(t, err)
	current := j2.Current()
	require.NotNil(t, current)
	assert.Equal(t, entry.ID, current.ID)
}

func TestOpenIgnoresStaleLastOpenEntry(t *testing.T) {
	j, store := newTestJournal(t)
	entry, err := j.Add("ephemeral", "", nil, "")
	require.NoError(t, err)
	require.NoError(t, j.SetCurrent(entry.ID))
	require.NoError(t, store.Delete(entry.ID))

	j2, err := Open(store)
	require.NoError(t, err)
	assert.Nil(t, j2.Current(), "stale lastOpenEntry must resolve to no selection")
}

func TestSearchUsesCache(t *testing.T) {
	j, _ := newTestJournal(t)

	_, err := j.Add("Beach day", "<p>surf</p>", []string{"travel"}, "")
	require.NoError(t, err)
	_, err = j.Add("Work notes", "<p>planning</p>", []string{"work"}, "")
	require.NoError(t, err)

	got := j.Search(query.Filters{Search: "beach"})
	require.Len(t, got, 1)
	assert.Equal(t, "Beach day", got[0].Title)

	got = j.Search(query.Filters{Search: "day", Tags: []string{"work"}})
	assert.Empty(t, got, "filters compose with AND")
}

func TestEntriesReturnsClones(t *testing.T) {
	j, _ := newTestJournal(t)
	_, err := j.Add("protected", "", []string{"a"}, "")
	require.NoError(t, err)

	snapshot := j.Entries()
	snapshot[0].Title = "vandalized"
	snapshot[0].Tags[0] = "mutated"

	fresh := j.Entries()
	assert.Equal(t, "protected", fresh[0].Title)
	assert.Equal(t, "a", fresh[0].Tags[0])
}

func TestDuplicateAddSurfaces(t *testing.T) {
	j, store := newTestJournal(t)

	entry, err := j.Add("one", "", nil, "")
	require.NoError(t, err)

	clash := entry.Clone()
	clash.Title = "two"
	err = store.Add(clash)
	assert.True(t, errors.Is(err, storage.ErrDuplicateID))
}
