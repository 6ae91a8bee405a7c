// ABOUTME: Storage interface and error taxonomy for chronicle data persistence
// ABOUTME: Defines the contract for entry and settings storage operations

package storage

import (
	"errors"

	"github.com/chroniclehq/chronicle/internal/models"
)

var (
	// ErrDuplicateID is returned by Add when an entry with the same ID
	// already exists. Add never overwrites.
	ErrDuplicateID = errors.New("entry id already exists")

	// ErrNotFound is returned by prefix lookups when no entry matches.
	// Plain Get signals absence with a nil entry instead, since a miss
	// on a point lookup is a normal outcome, not a failure.
	ErrNotFound = errors.New("entry not found")
)

// Store defines the persistence contract for diary entries and
// settings. Entries and settings live in isolated namespaces. Every
// method may touch durable storage and is safe for concurrent use
// within a single process; engine failures are returned wrapped,
// never swallowed.
type Store interface {
	// Close closes the store and releases the underlying handle.
	Close() error

	// Entry operations

	// All returns every entry with temporal fields deserialized to
	// typed timestamps. No ordering is guaranteed; ordering belongs to
	// the caller.
	All() ([]*models.Entry, error)

	// Get retrieves an entry by ID. Returns (nil, nil) when no entry
	// with that ID exists.
	Get(id string) (*models.Entry, error)

	// Add inserts a new entry. Fails with ErrDuplicateID if the ID is
	// already present.
	Add(entry *models.Entry) error

	// Put fully replaces the entry at entry.ID, inserting it if
	// absent (upsert).
	Put(entry *models.Entry) error

	// Delete removes an entry. Deleting an absent ID is a no-op; the
	// ID becomes immediately reusable.
	Delete(id string) error

	// ClearAll removes every entry record. Settings are untouched.
	ClearAll() error

	// ReplaceAll atomically replaces the full entry collection in a
	// single transaction. On failure the previous collection remains
	// intact. This is the restore primitive.
	ReplaceAll(entries []*models.Entry) error

	// Count returns the number of stored entries.
	Count() (int, error)

	// GetByPrefix finds an entry by ID prefix (min 6 chars). Returns
	// ErrNotFound when nothing matches and an error when the prefix is
	// ambiguous.
	GetByPrefix(prefix string) (*models.Entry, error)

	// GetByIDOrPrefix tries an exact ID match first, then falls back
	// to prefix matching.
	GetByIDOrPrefix(ref string) (*models.Entry, error)

	// Settings operations

	// GetSetting retrieves a setting value. ok is false when the key
	// has never been written; absence is a normal default state.
	GetSetting(key string) (value string, ok bool, err error)

	// SetSetting writes a setting value, overwriting any previous one.
	SetSetting(key, value string) error

	// AllSettings returns every stored setting.
	AllSettings() (map[string]string, error)

	// Maintenance

	// Compact performs storage maintenance (VACUUM).
	Compact() error
}
