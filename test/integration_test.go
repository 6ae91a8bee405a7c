// ABOUTME: Integration tests for the full diary workflow
// ABOUTME: Tests end-to-end scenarios across storage, session, filtering, and backup

package test

import (
	"path/filepath"
	"testing"

	"github.com/chroniclehq/chronicle/internal/backup"
	"github.com/chroniclehq/chronicle/internal/query"
	"github.com/chroniclehq/chronicle/internal/session"
	"github.com/chroniclehq/chronicle/internal/storage"
)

// TestFullWorkflow exercises the complete diary lifecycle: create
// entries through the session, filter them, take a backup, and restore
// it into a fresh store.
func TestFullWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	defer store.Close()

	journal, err := session.Open(store)
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}

	// Create a few entries
	beach, err := journal.Add("Beach day", "<p>Collected shells at the beach</p>", []string{"travel", "summer"}, "Vacations")
	if err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}
	if _, err := journal.Add("Standup notes", "<p>Sprint planning went long</p>", []string{"work"}, "Work"); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}
	if _, err := journal.Add("Grocery list", "<p>milk, eggs</p>", nil, ""); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	if journal.Len() != 3 {
		t.Fatalf("expected 3 cached entries, got %d", journal.Len())
	}

	// Filter by search text
	matched := journal.Search(query.Filters{Search: "beach"})
	if len(matched) != 1 || matched[0].ID != beach.ID {
		t.Errorf("search 'beach' returned %d entries", len(matched))
	}

	// Filter by tag and folder together
	matched = journal.Search(query.Filters{Tags: []string{"work"}, Folder: "Work"})
	if len(matched) != 1 {
		t.Errorf("tag+folder filter returned %d entries, want 1", len(matched))
	}

	// Update through the session and verify write-through
	title := "Beach day (edited)"
	updated, err := journal.Update(beach.ID, session.Update{Title: &title})
	if err != nil {
		t.Fatalf("failed to update entry: %v", err)
	}
	if !updated.LastModified.After(beach.LastModified) {
		t.Error("LastModified did not advance on update")
	}
	stored, err := store.Get(beach.ID)
	if err != nil {
		t.Fatalf("failed to get entry: %v", err)
	}
	if stored.Title != title {
		t.Errorf("stored title = %q, want %q", stored.Title, title)
	}

	// Record session position and a preference
	if err := journal.SetCurrent(beach.ID); err != nil {
		t.Fatalf("failed to set current entry: %v", err)
	}
	prefs, err := session.LoadPrefs(store)
	if err != nil {
		t.Fatalf("failed to load prefs: %v", err)
	}
	if _, err := prefs.ToggleGlassTheme(); err != nil {
		t.Fatalf("failed to toggle theme: %v", err)
	}

	// Export a snapshot
	data, err := backup.Export(store)
	if err != nil {
		t.Fatalf("failed to export backup: %v", err)
	}
	t.Logf("Exported %d bytes", len(data))

	// Restore into a completely fresh store
	store2, err := storage.NewSQLiteStore(filepath.Join(tmpDir, "restored.db"))
	if err != nil {
		t.Fatalf("failed to initialize second store: %v", err)
	}
	defer store2.Close()

	result, err := backup.Import(store2, data)
	if err != nil {
		t.Fatalf("failed to import backup: %v", err)
	}
	if result.EntriesImported != 3 {
		t.Errorf("imported %d entries, want 3", result.EntriesImported)
	}

	// The restored journal picks up the carried session state
	journal2, err := session.Open(store2)
	if err != nil {
		t.Fatalf("failed to open restored journal: %v", err)
	}
	if journal2.Len() != 3 {
		t.Errorf("restored journal has %d entries, want 3", journal2.Len())
	}
	current := journal2.Current()
	if current == nil || current.ID != beach.ID {
		t.Error("restored journal did not recover the last-open entry")
	}

	restored, err := store2.Get(beach.ID)
	if err != nil {
		t.Fatalf("failed to get restored entry: %v", err)
	}
	if restored.Title != title {
		t.Errorf("restored title = %q, want %q", restored.Title, title)
	}
	if !restored.Date.Equal(stored.Date) {
		t.Errorf("restored date %v != original %v", restored.Date, stored.Date)
	}
	if len(restored.Tags) != 2 || restored.Tags[0] != "travel" {
		t.Errorf("restored tags = %v", restored.Tags)
	}

	prefs2, err := session.LoadPrefs(store2)
	if err != nil {
		t.Fatalf("failed to load restored prefs: %v", err)
	}
	if !prefs2.GlassTheme {
		t.Error("glass theme preference lost in backup round-trip")
	}

	t.Log("Full workflow test completed successfully")
}

// TestDestructiveRestore verifies that importing replaces the existing
// collection entirely rather than merging.
func TestDestructiveRestore(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := storage.NewSQLiteStore(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	defer store.Close()

	journal, err := session.Open(store)
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}

	if _, err := journal.Add("kept", "", nil, ""); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}
	data, err := backup.Export(store)
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	// Add more entries after taking the snapshot
	if _, err := journal.Add("doomed one", "", nil, ""); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}
	if _, err := journal.Add("doomed two", "", nil, ""); err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}

	if _, err := backup.Import(store, data); err != nil {
		t.Fatalf("failed to import: %v", err)
	}
	if err := journal.Refresh(); err != nil {
		t.Fatalf("failed to refresh: %v", err)
	}

	if journal.Len() != 1 {
		t.Errorf("expected 1 entry after restore, got %d", journal.Len())
	}
	entries := journal.Entries()
	if len(entries) != 1 || entries[0].Title != "kept" {
		t.Errorf("unexpected surviving entries: %v", entries)
	}

	// A malformed import must leave the restored state untouched
	if _, err := backup.Import(store, []byte(`{"version":"1.0"}`)); err == nil {
		t.Fatal("expected error for snapshot without entries")
	}
	count, err := store.Count()
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("failed import changed the store: %d entries", count)
	}
}
