// ABOUTME: MCP tool definitions and handlers for diary entry operations
// ABOUTME: Provides tools for listing, reading, writing, and backing up entries

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/chroniclehq/chronicle/internal/backup"
	"github.com/chroniclehq/chronicle/internal/codec"
	"github.com/chroniclehq/chronicle/internal/content"
	"github.com/chroniclehq/chronicle/internal/models"
	"github.com/chroniclehq/chronicle/internal/query"
	"github.com/chroniclehq/chronicle/internal/session"
)

// Type definitions for input/output structures

type SearchEntriesInput struct {
	Search *string  `json:"search,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Folder *string  `json:"folder,omitempty"`
	Since  *string  `json:"since,omitempty"`
	Until  *string  `json:"until,omitempty"`
}

type EntrySummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Tags         []string  `json:"tags"`
	Folder       string    `json:"folder,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

type SearchEntriesOutput struct {
	Entries []EntrySummary `json:"entries"`
	Count   int            `json:"count"`
}

type GetEntryInput struct {
	EntryID string `json:"entry_id"`
}

type GetEntryOutput struct {
	EntrySummary
	Content string `json:"content"`
}

type CreateEntryInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Folder  string   `json:"folder,omitempty"`
}

type UpdateEntryInput struct {
	EntryID string    `json:"entry_id"`
	Title   *string   `json:"title,omitempty"`
	Content *string   `json:"content,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
	Folder  *string   `json:"folder,omitempty"`
}

type DeleteEntryInput struct {
	EntryID string `json:"entry_id"`
}

type DeleteEntryOutput struct {
	Success bool   `json:"success"`
	EntryID string `json:"entry_id"`
}

type ExportBackupInput struct{}

// Tool registration

func (s *Server) registerTools() {
	s.registerSearchEntriesTool()
	s.registerGetEntryTool()
	s.registerCreateEntryTool()
	s.registerUpdateEntryTool()
	s.registerDeleteEntryTool()
	s.registerExportBackupTool()
}

func (s *Server) registerSearchEntriesTool() {
	tool := mcp.Tool{
		Name:        "search_entries",
		Description: "Search diary entries. All filters are optional and combine with AND: free-text search over title and content, tag membership (any listed tag matches), exact folder, and an inclusive date range. Returns entry metadata without content; use get_entry for the full text.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"search": map[string]interface{}{
					"type":        "string",
					"description": "Case-insensitive substring matched against title or content",
				},
				"tags": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Entry passes if it carries at least one of these tags",
				},
				"folder": map[string]interface{}{
					"type":        "string",
					"description": "Exact folder name",
				},
				"since": map[string]interface{}{
					"type":        "string",
					"description": "Inclusive lower bound on entry date (RFC 3339)",
				},
				"until": map[string]interface{}{
					"type":        "string",
					"description": "Inclusive upper bound on entry date (RFC 3339)",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleSearchEntries)
}

func (s *Server) registerGetEntryTool() {
	tool := mcp.Tool{
		Name:        "get_entry",
		Description: "Retrieve a single diary entry with its full rich-text content. Accepts a full entry ID or a unique prefix of at least 6 characters.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "Entry ID or unique ID prefix",
				},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleGetEntry)
}

func (s *Server) registerCreateEntryTool() {
	tool := mcp.Tool{
		Name:        "create_entry",
		Description: "Create a new diary entry. The entry ID and timestamps are assigned by the store; content may be HTML markup or plain text and is stored verbatim.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"title": map[string]interface{}{
					"type":        "string",
					"description": "Entry title",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Entry body (HTML markup or plain text)",
				},
				"tags": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Ordered list of tags",
				},
				"folder": map[string]interface{}{
					"type":        "string",
					"description": "Optional folder for organization",
				},
			},
			Required: []string{"title"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleCreateEntry)
}

func (s *Server) registerUpdateEntryTool() {
	tool := mcp.Tool{
		Name:        "update_entry",
		Description: "Update an existing diary entry. Only the supplied fields change; tags replace the whole list when given. The entry's modification time is refreshed automatically.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "Entry ID or unique ID prefix",
				},
				"title":   map[string]interface{}{"type": "string"},
				"content": map[string]interface{}{"type": "string"},
				"tags": map[string]interface{}{
					"type":  "array",
					"items": map[string]interface{}{"type": "string"},
				},
				"folder": map[string]interface{}{"type": "string"},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleUpdateEntry)
}

func (s *Server) registerDeleteEntryTool() {
	tool := mcp.Tool{
		Name:        "delete_entry",
		Description: "Permanently delete a diary entry. This is a hard delete; the entry cannot be recovered except from a backup.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": map[string]interface{}{
					"type":        "string",
					"description": "Entry ID or unique ID prefix",
				},
			},
			Required: []string{"entry_id"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleDeleteEntry)
}

func (s *Server) registerExportBackupTool() {
	tool := mcp.Tool{
		Name:        "export_backup",
		Description: "Export the full diary as a portable JSON snapshot containing every entry and setting. The snapshot can be restored with the import command.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleExportBackup)
}

// Tool handlers

func (s *Server) handleSearchEntries(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input SearchEntriesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	filters := query.Filters{Tags: input.Tags}
	if input.Search != nil {
		filters.Search = *input.Search
	}
	if input.Folder != nil {
		filters.Folder = *input.Folder
	}
	if input.Since != nil || input.Until != nil {
		dr := &query.DateRange{Start: time.Time{}, End: time.Now()}
		if input.Since != nil {
			t, err := codec.ParseTime("since", *input.Since)
			if err != nil {
				return nil, fmt.Errorf("invalid since value: %w", err)
			}
			dr.Start = t
		}
		if input.Until != nil {
			t, err := codec.ParseTime("until", *input.Until)
			if err != nil {
				return nil, fmt.Errorf("invalid until value: %w", err)
			}
			dr.End = t
		}
		filters.DateRange = dr
	}

	entries := s.journal.Search(filters)
	output := SearchEntriesOutput{
		Entries: make([]EntrySummary, 0, len(entries)),
		Count:   len(entries),
	}
	for _, entry := range entries {
		output.Entries = append(output.Entries, summarize(entry))
	}
	return jsonResult(output)
}

func (s *Server) handleGetEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input GetEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if input.EntryID == "" {
		return nil, fmt.Errorf("entry_id is required")
	}

	entry, err := s.journal.Store().GetByIDOrPrefix(input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	output := GetEntryOutput{
		EntrySummary: summarize(entry),
		Content:      content.ToMarkdown(entry.Content),
	}
	return jsonResult(output)
}

func (s *Server) handleCreateEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input CreateEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	entry, err := s.journal.Add(input.Title, input.Content, input.Tags, input.Folder)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}
	return jsonResult(summarize(entry))
}

func (s *Server) handleUpdateEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input UpdateEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if input.EntryID == "" {
		return nil, fmt.Errorf("entry_id is required")
	}

	entry, err := s.journal.Store().GetByIDOrPrefix(input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	updated, err := s.journal.Update(entry.ID, session.Update{
		Title:   input.Title,
		Content: input.Content,
		Tags:    input.Tags,
		Folder:  input.Folder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return jsonResult(summarize(updated))
}

func (s *Server) handleDeleteEntry(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input DeleteEntryInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if input.EntryID == "" {
		return nil, fmt.Errorf("entry_id is required")
	}

	entry, err := s.journal.Store().GetByIDOrPrefix(input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	if err := s.journal.Delete(entry.ID); err != nil {
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}

	return jsonResult(DeleteEntryOutput{Success: true, EntryID: entry.ID})
}

func (s *Server) handleExportBackup(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := backup.Export(s.journal.Store())
	if err != nil {
		return nil, fmt.Errorf("failed to export backup: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// Helpers

func summarize(e *models.Entry) EntrySummary {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EntrySummary{
		ID:           e.ID,
		Title:        e.Title,
		Date:         e.Date,
		Tags:         tags,
		Folder:       e.Folder,
		LastModified: e.LastModified,
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
