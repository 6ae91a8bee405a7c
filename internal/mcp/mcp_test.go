// ABOUTME: Tests for MCP server tools and input validation
// ABOUTME: Validates tool parameter handling and entry round-trips through handlers

package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chroniclehq/chronicle/internal/session"
	"github.com/chroniclehq/chronicle/internal/storage"
)

func setupTestServer(t *testing.T) (*Server, *session.Journal) {
	t.Helper()

	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	journal, err := session.Open(store)
	if err != nil {
		t.Fatalf("failed to open journal: %v", err)
	}
	return NewServer(journal), journal
}

// marshalToMap converts a struct to map[string]interface{} for test input
func marshalToMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	inputJSON, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal input: %v", err)
	}
	var inputMap map[string]interface{}
	if err := json.Unmarshal(inputJSON, &inputMap); err != nil {
		t.Fatalf("failed to unmarshal to map: %v", err)
	}
	return inputMap
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), input interface{}) (*mcp.CallToolResult, error) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = marshalToMap(t, input)
	return handler(context.Background(), req)
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestHandleCreateEntry(t *testing.T) {
	server, journal := setupTestServer(t)

	result, err := callTool(t, server.handleCreateEntry, CreateEntryInput{
		Title:   "Beach day",
		Content: "<p>sand</p>",
		Tags:    []string{"travel"},
		Folder:  "Summer",
	})
	if err != nil {
		t.Fatalf("handleCreateEntry failed: %v", err)
	}

	var summary EntrySummary
	if err := json.Unmarshal([]byte(resultText(t, result)), &summary); err != nil {
		t.Fatalf("bad output JSON: %v", err)
	}
	if summary.ID == "" || summary.Title != "Beach day" {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if journal.Len() != 1 {
		t.Errorf("journal cache has %d entries, want 1", journal.Len())
	}
}

func TestHandleCreateEntry_MissingTitle(t *testing.T) {
	server, _ := setupTestServer(t)

	_, err := callTool(t, server.handleCreateEntry, CreateEntryInput{})
	if err == nil {
		t.Error("expected error for missing title")
	}
}

func TestHandleGetEntry(t *testing.T) {
	server, journal := setupTestServer(t)
	entry, err := journal.Add("Readable", "<p>the <strong>body</strong></p>", nil, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	result, err := callTool(t, server.handleGetEntry, GetEntryInput{EntryID: entry.ID[:8]})
	if err != nil {
		t.Fatalf("handleGetEntry failed: %v", err)
	}

	var output GetEntryOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &output); err != nil {
		t.Fatalf("bad output JSON: %v", err)
	}
	if output.ID != entry.ID {
		t.Errorf("ID = %q, want %q", output.ID, entry.ID)
	}
	if !strings.Contains(output.Content, "**body**") {
		t.Errorf("content not rendered as markdown: %q", output.Content)
	}
}

func TestHandleGetEntry_Missing(t *testing.T) {
	server, _ := setupTestServer(t)

	_, err := callTool(t, server.handleGetEntry, GetEntryInput{EntryID: "ffffff"})
	if err == nil {
		t.Error("expected error for unknown entry")
	}
	_, err = callTool(t, server.handleGetEntry, GetEntryInput{})
	if err == nil {
		t.Error("expected error for empty entry_id")
	}
}

func TestHandleSearchEntries(t *testing.T) {
	server, journal := setupTestServer(t)
	if _, err := journal.Add("Beach day", "<p>surf</p>", []string{"travel"}, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := journal.Add("Work notes", "<p>planning</p>", []string{"work"}, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	search := "beach"
	result, err := callTool(t, server.handleSearchEntries, SearchEntriesInput{Search: &search})
	if err != nil {
		t.Fatalf("handleSearchEntries failed: %v", err)
	}

	var output SearchEntriesOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &output); err != nil {
		t.Fatalf("bad output JSON: %v", err)
	}
	if output.Count != 1 || output.Entries[0].Title != "Beach day" {
		t.Errorf("unexpected search output: %+v", output)
	}
}

func TestHandleSearchEntries_BadSince(t *testing.T) {
	server, _ := setupTestServer(t)

	since := "not-a-date"
	_, err := callTool(t, server.handleSearchEntries, SearchEntriesInput{Since: &since})
	if err == nil {
		t.Error("expected error for invalid since value")
	}
}

func TestHandleUpdateEntry(t *testing.T) {
	server, journal := setupTestServer(t)
	entry, err := journal.Add("draft", "<p>v1</p>", nil, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	title := "final"
	result, err := callTool(t, server.handleUpdateEntry, UpdateEntryInput{
		EntryID: entry.ID,
		Title:   &title,
	})
	if err != nil {
		t.Fatalf("handleUpdateEntry failed: %v", err)
	}

	var summary EntrySummary
	if err := json.Unmarshal([]byte(resultText(t, result)), &summary); err != nil {
		t.Fatalf("bad output JSON: %v", err)
	}
	if summary.Title != "final" {
		t.Errorf("Title = %q, want final", summary.Title)
	}
	if !summary.LastModified.After(entry.LastModified) {
		t.Error("LastModified did not advance on update")
	}
}

func TestHandleDeleteEntry(t *testing.T) {
	server, journal := setupTestServer(t)
	entry, err := journal.Add("doomed", "", nil, "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	result, err := callTool(t, server.handleDeleteEntry, DeleteEntryInput{EntryID: entry.ID})
	if err != nil {
		t.Fatalf("handleDeleteEntry failed: %v", err)
	}

	var output DeleteEntryOutput
	if err := json.Unmarshal([]byte(resultText(t, result)), &output); err != nil {
		t.Fatalf("bad output JSON: %v", err)
	}
	if !output.Success || output.EntryID != entry.ID {
		t.Errorf("unexpected delete output: %+v", output)
	}
	if journal.Len() != 0 {
		t.Error("entry still cached after delete")
	}
}

func TestHandleExportBackup(t *testing.T) {
	server, journal := setupTestServer(t)
	if _, err := journal.Add("kept", "", nil, ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	result, err := callTool(t, server.handleExportBackup, ExportBackupInput{})
	if err != nil {
		t.Fatalf("handleExportBackup failed: %v", err)
	}

	var snapshot map[string]interface{}
	if err := json.Unmarshal([]byte(resultText(t, result)), &snapshot); err != nil {
		t.Fatalf("backup output is not JSON: %v", err)
	}
	if snapshot["version"] != "1.0" {
		t.Errorf("version = %v, want 1.0", snapshot["version"])
	}
	entries, ok := snapshot["entries"].([]interface{})
	if !ok || len(entries) != 1 {
		t.Errorf("entries = %v", snapshot["entries"])
	}
}
