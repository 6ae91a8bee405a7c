// ABOUTME: Session state holding the cached entry collection and current entry
// ABOUTME: Keeps the in-memory view in lockstep with the store after every mutation

package session

import (
	"fmt"
	"sync"

	"github.com/chroniclehq/chronicle/internal/models"
	"github.com/chroniclehq/chronicle/internal/query"
	"github.com/chroniclehq/chronicle/internal/storage"
)

// Journal owns the in-memory projection of the entry store for one
// session. The store is the source of truth: every mutating call
// writes through and re-reads the collection before returning, so the
// cache can never lag a completed write.
type Journal struct {
	store storage.Store

	mu      sync.RWMutex
	entries []*models.Entry
	current string
}

// Open loads the entry collection and restores the last-open entry
// from settings. A missing lastOpenEntry setting, or one pointing at a
// since-deleted entry, is a normal empty state.
func Open(store storage.Store) (*Journal, error) {
	j := &Journal{store: store}
	if err := j.Refresh(); err != nil {
		return nil, err
	}

	id, ok, err := store.GetSetting(SettingLastOpenEntry)
	if err != nil {
		return nil, fmt.Errorf("restore last open entry: %w", err)
	}
	if ok && id != "" {
		j.mu.Lock()
		if j.lookupLocked(id) != nil {
			j.current = id
		}
		j.mu.Unlock()
	}
	return j, nil
}

// Store exposes the underlying store for collaborators (backup, MCP).
func (j *Journal) Store() storage.Store {
	return j.store
}

// Refresh re-reads the full collection from the store.
func (j *Journal) Refresh() error {
	entries, err := j.store.All()
	if err != nil {
		return fmt.Errorf("refresh entries: %w", err)
	}
	j.mu.Lock()
	j.entries = entries
	j.mu.Unlock()
	return nil
}

// Entries returns a snapshot of the cached collection. Entries are
// cloned so the caller cannot mutate the cache in place.
func (j *Journal) Entries() []*models.Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]*models.Entry, len(j.entries))
	for i, e := range j.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of cached entries.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Current returns the entry last opened in this session, or nil.
func (j *Journal) Current() *models.Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if e := j.lookupLocked(j.current); e != nil {
		return e.Clone()
	}
	return nil
}

// SetCurrent records the entry the user is viewing and persists it as
// the lastOpenEntry setting. Persisting is best-effort: a storage
// failure is returned but the in-memory current entry is updated
// regardless. Pass "" to clear.
func (j *Journal) SetCurrent(id string) error {
	j.mu.Lock()
	j.current = id
	j.mu.Unlock()
	if err := j.store.SetSetting(SettingLastOpenEntry, id); err != nil {
		return fmt.Errorf("persist last open entry: %w", err)
	}
	return nil
}

// Add creates a new entry through the store and refreshes the cache.
func (j *Journal) Add(title, content string, tags []string, folder string) (*models.Entry, error) {
	entry := models.NewEntry(title, content, tags, folder)
	if err := j.store.Add(entry); err != nil {
		return nil, err
	}
	if err := j.Refresh(); err != nil {
		return nil, err
	}
	return entry.Clone(), nil
}

// Update describes a partial entry mutation. Nil fields are left
// unchanged; Tags replaces the whole list when set.
type Update struct {
	Title   *string
	Content *string
	Tags    *[]string
	Folder  *string
}

// Update applies a partial mutation to an existing entry, refreshes
// its modification time, writes through, and refreshes the cache.
// Updating an ID that does not exist fails with storage.ErrNotFound;
// the store's Put itself upserts, but a partial update needs a base
// record to patch.
func (j *Journal) Update(id string, u Update) (*models.Entry, error) {
	entry, err := j.store.Get(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, fmt.Errorf("update %s: %w", id, storage.ErrNotFound)
	}

	if u.Title != nil {
		entry.Title = *u.Title
	}
	if u.Content != nil {
		entry.Content = *u.Content
	}
	if u.Tags != nil {
		entry.Tags = *u.Tags
	}
	if u.Folder != nil {
		entry.Folder = *u.Folder
	}
	entry.Touch()

	if err := j.store.Put(entry); err != nil {
		return nil, err
	}
	if err := j.Refresh(); err != nil {
		return nil, err
	}
	return entry.Clone(), nil
}

// Delete removes an entry and refreshes the cache. Deleting the
// current entry clears the current selection.
func (j *Journal) Delete(id string) error {
	if err := j.store.Delete(id); err != nil {
		return err
	}
	j.mu.Lock()
	if j.current == id {
		j.current = ""
	}
	j.mu.Unlock()
	return j.Refresh()
}

// Search filters the cached collection. The result is a fresh slice
// over cloned entries, input order preserved.
func (j *Journal) Search(f query.Filters) []*models.Entry {
	return query.Apply(j.Entries(), f)
}

// lookupLocked finds a cached entry by ID. Caller holds j.mu.
func (j *Journal) lookupLocked(id string) *models.Entry {
	if id == "" {
		return nil
	}
	for _, e := range j.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}
