// ABOUTME: SQLite storage implementation using modernc.org/sqlite (pure Go)
// ABOUTME: Persists entries with textual timestamps plus a settings key-value table

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chroniclehq/chronicle/internal/codec"
	"github.com/chroniclehq/chronicle/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite. Timestamps
// are persisted as RFC3339Nano text and cross the codec adapter on
// every scan, so date-typed fields survive the text boundary intact.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite storage instance.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	// 0700: diary contents are personal data
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	// WAL so an auto-save writer never blocks concurrent readers
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

// initSchema creates the database tables if they don't exist.
func (s *SQLiteStore) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]',
			folder TEXT NOT NULL DEFAULT '',
			last_modified TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date);
		CREATE INDEX IF NOT EXISTS idx_entries_title ON entries(title);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const entryColumns = "id, title, content, date, tags, folder, last_modified"

// All returns every entry. Ordering is the caller's responsibility.
func (s *SQLiteStore) All() ([]*models.Entry, error) {
	rows, err := s.db.Query("SELECT " + entryColumns + " FROM entries")
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// Get retrieves an entry by ID, or (nil, nil) when absent.
func (s *SQLiteStore) Get(id string) (*models.Entry, error) {
	row := s.db.QueryRow("SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Add inserts a new entry, failing with ErrDuplicateID on collision.
// The existence check and insert share one transaction so concurrent
// adds of the same ID cannot both succeed.
func (s *SQLiteStore) Add(entry *models.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin add: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM entries WHERE id = ?", entry.ID).Scan(&count); err != nil {
		return fmt.Errorf("check entry exists: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("add entry %s: %w", entry.ID, ErrDuplicateID)
	}

	if err := insertEntry(tx, entry); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add: %w", err)
	}
	return nil
}

// Put fully replaces the entry at entry.ID, inserting it if absent.
func (s *SQLiteStore) Put(entry *models.Entry) error {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO entries (id, title, content, date, tags, folder, last_modified)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			date = excluded.date,
			tags = excluded.tags,
			folder = excluded.folder,
			last_modified = excluded.last_modified
	`
	_, err = s.db.Exec(query,
		entry.ID, entry.Title, entry.Content, codec.FormatTime(entry.Date),
		tags, entry.Folder, codec.FormatTime(entry.LastModified),
	)
	if err != nil {
		return fmt.Errorf("put entry: %w", err)
	}
	return nil
}

// Delete removes an entry. Absent IDs are a no-op.
func (s *SQLiteStore) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// ClearAll removes every entry record.
func (s *SQLiteStore) ClearAll() error {
	if _, err := s.db.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}

// ReplaceAll atomically replaces the full entry collection. The clear
// and every insert share a single transaction, so an interrupted
// restore leaves the previous collection intact.
func (s *SQLiteStore) ReplaceAll(entries []*models.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	for _, entry := range entries {
		if err := insertEntry(tx, entry); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	return nil
}

// Count returns the number of stored entries.
func (s *SQLiteStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return count, nil
}

// GetByPrefix finds an entry by ID prefix (min 6 chars).
// UUIDs only contain hex characters and hyphens, so no SQL wildcard
// escaping is needed.
func (s *SQLiteStore) GetByPrefix(prefix string) (*models.Entry, error) {
	if len(prefix) < 6 {
		return nil, fmt.Errorf("prefix must be at least 6 characters")
	}

	rows, err := s.db.Query("SELECT "+entryColumns+" FROM entries WHERE id LIKE ?", prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("query entries by prefix: %w", err)
	}
	defer rows.Close()

	var matches []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("prefix %s: %w", prefix, ErrNotFound)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %s matches %d entries", prefix, len(matches))
	}
	return matches[0], nil
}

// GetByIDOrPrefix tries an exact ID match first, then prefix matching.
func (s *SQLiteStore) GetByIDOrPrefix(ref string) (*models.Entry, error) {
	entry, err := s.Get(ref)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		return entry, nil
	}

	entry, err = s.GetByPrefix(ref)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", ref, ErrNotFound)
	}
	return entry, nil
}

// Settings operations

// GetSetting retrieves a setting value; ok is false when absent.
func (s *SQLiteStore) GetSetting(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting writes a setting value, overwriting any previous one.
func (s *SQLiteStore) SetSetting(key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// AllSettings returns every stored setting.
func (s *SQLiteStore) AllSettings() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settings: %w", err)
	}
	return settings, nil
}

// Compact performs database maintenance (VACUUM).
func (s *SQLiteStore) Compact() error {
	if _, err := s.db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	return nil
}

// Helper functions

type execer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
}

func insertEntry(e execer, entry *models.Entry) error {
	tags, err := encodeTags(entry.Tags)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO entries (id, title, content, date, tags, folder, last_modified)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = e.Exec(query,
		entry.ID, entry.Title, entry.Content, codec.FormatTime(entry.Date),
		tags, entry.Folder, codec.FormatTime(entry.LastModified),
	)
	if err != nil {
		return fmt.Errorf("insert entry %s: %w", entry.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanEntry reads one entry row, routing both timestamps through the
// codec adapter. This is the single store-read boundary; no other code
// path turns stored text back into time values.
func scanEntry(row rowScanner) (*models.Entry, error) {
	var entry models.Entry
	var date, modified, tags string
	if err := row.Scan(
		&entry.ID, &entry.Title, &entry.Content, &date,
		&tags, &entry.Folder, &modified,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	var err error
	if entry.Date, err = codec.ParseTime("date", date); err != nil {
		return nil, err
	}
	if entry.LastModified, err = codec.ParseTime("lastModified", modified); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return &entry, nil
}

// encodeTags serializes the ordered tag list as a JSON array. The
// store keeps duplicates if the caller supplies them.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(data), nil
}

var _ Store = (*SQLiteStore)(nil)
