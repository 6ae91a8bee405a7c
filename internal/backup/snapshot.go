// ABOUTME: Backup snapshot export and restore-from-snapshot pipeline
// ABOUTME: Versioned JSON format with transactional destructive-replace import

package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/chroniclehq/chronicle/internal/codec"
	"github.com/chroniclehq/chronicle/internal/models"
	"github.com/chroniclehq/chronicle/internal/storage"
)

// FormatVersion identifies the snapshot format.
const FormatVersion = "1.0"

// ErrMalformedBackup is returned when backup input cannot be parsed or
// its top-level entries field is missing or not a sequence. The store
// is left untouched in that case.
var ErrMalformedBackup = errors.New("malformed backup file")

// Snapshot is the portable on-disk backup format. Entries carry
// textual timestamps; the codec adapter converts on both sides of the
// boundary.
type Snapshot struct {
	Version    string            `json:"version"`
	ExportDate string            `json:"exportDate"`
	Entries    []codec.EntryJSON `json:"entries"`
	Settings   map[string]string `json:"settings,omitempty"`
}

// Result reports what a restore applied. Setting failures are per-key
// and non-fatal to the rest of the import.
type Result struct {
	EntriesImported int
	SettingsApplied int
	SettingsFailed  []string
}

// Export serializes every entry and setting currently in the store to
// the snapshot JSON format.
func Export(store storage.Store) ([]byte, error) {
	entries, err := store.All()
	if err != nil {
		return nil, fmt.Errorf("read entries for export: %w", err)
	}
	settings, err := store.AllSettings()
	if err != nil {
		return nil, fmt.Errorf("read settings for export: %w", err)
	}

	snapshot := Snapshot{
		Version:    FormatVersion,
		ExportDate: codec.FormatTime(time.Now()),
		Entries:    make([]codec.EntryJSON, 0, len(entries)),
		Settings:   settings,
	}
	for _, entry := range entries {
		snapshot.Entries = append(snapshot.Entries, codec.EncodeEntry(entry))
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// rawSnapshot defers entry decoding so the shape check can tell a
// missing or mistyped entries field apart from bad entry contents.
type rawSnapshot struct {
	Version  string            `json:"version"`
	Entries  json.RawMessage   `json:"entries"`
	Settings map[string]string `json:"settings"`
}

// Import restores the store from snapshot data with destructive
// replace semantics: the existing entry collection is cleared and the
// snapshot's entries inserted in a single transaction, so an
// interrupted restore can never leave a mix of old and new data.
// Settings are applied afterwards one key at a time; a failed key is
// recorded and skipped. The caller owns refreshing any cached view.
func Import(store storage.Store, data []byte) (*Result, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	if raw.Entries == nil {
		return nil, fmt.Errorf("%w: missing entries field", ErrMalformedBackup)
	}

	var wireEntries []codec.EntryJSON
	if err := json.Unmarshal(raw.Entries, &wireEntries); err != nil {
		return nil, fmt.Errorf("%w: entries is not a sequence", ErrMalformedBackup)
	}

	// Every imported entry passes through the adapter regardless of
	// its original encoding.
	entries := make([]*models.Entry, 0, len(wireEntries))
	for i, w := range wireEntries {
		entry, err := codec.DecodeEntry(w)
		if err != nil {
			return nil, fmt.Errorf("decode entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	if err := store.ReplaceAll(entries); err != nil {
		return nil, fmt.Errorf("restore entries: %w", err)
	}

	result := &Result{EntriesImported: len(entries)}
	for key, value := range raw.Settings {
		if err := store.SetSetting(key, value); err != nil {
			result.SettingsFailed = append(result.SettingsFailed, key)
			continue
		}
		result.SettingsApplied++
	}
	return result, nil
}
