// ABOUTME: Human-readable export renderings of the entry collection
// ABOUTME: Produces Markdown and plain-text documents from rich-text entries

package backup

import (
	"strings"
	"time"

	"github.com/chroniclehq/chronicle/internal/content"
	"github.com/chroniclehq/chronicle/internal/models"
)

// RenderMarkdown produces a single Markdown document containing every
// given entry, with HTML content converted to Markdown. This is a
// write-only export; snapshots remain the restore format.
func RenderMarkdown(entries []*models.Entry) []byte {
	var sb strings.Builder
	sb.WriteString("# My Diary\n\n")
	sb.WriteString("Exported on: " + time.Now().Format("2006-01-02") + "\n\n---\n\n")

	for _, entry := range entries {
		sb.WriteString("## " + entry.Title + "\n\n")
		sb.WriteString("**Date:** " + entry.Date.Format("2006-01-02") + "\n\n")
		if len(entry.Tags) > 0 {
			sb.WriteString("**Tags:** " + strings.Join(entry.Tags, ", ") + "\n\n")
		}
		sb.WriteString(content.ToMarkdown(entry.Content))
		sb.WriteString("\n\n---\n\n")
	}
	return []byte(sb.String())
}

// RenderText produces a plain-text document from the entries, markup
// stripped.
func RenderText(entries []*models.Entry) []byte {
	var sb strings.Builder
	sb.WriteString("My Diary\n")
	sb.WriteString("Exported on: " + time.Now().Format("2006-01-02") + "\n\n")

	for _, entry := range entries {
		sb.WriteString(entry.Title + "\n")
		sb.WriteString("Date: " + entry.Date.Format("2006-01-02") + "\n")
		if len(entry.Tags) > 0 {
			sb.WriteString("Tags: " + strings.Join(entry.Tags, ", ") + "\n")
		}
		sb.WriteString("\n" + content.ToText(entry.Content) + "\n\n")
	}
	return []byte(sb.String())
}
