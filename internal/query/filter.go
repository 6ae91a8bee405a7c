// ABOUTME: In-memory filtering of the loaded entry collection
// ABOUTME: Composes search, tag, folder, and date-range constraints with AND semantics

package query

import (
	"strings"
	"time"

	"github.com/chroniclehq/chronicle/internal/models"
)

// DateRange bounds an entry's creation date. Both ends are inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Filters specifies criteria for filtering entries. Zero-value fields
// impose no constraint; set fields combine with AND.
type Filters struct {
	// Search matches case-insensitively against title OR content.
	Search string

	// Tags passes entries carrying at least one of the listed tags.
	Tags []string

	// Folder requires an exact match.
	Folder string

	// DateRange requires the entry's creation date to fall within the
	// inclusive bounds.
	DateRange *DateRange
}

// Apply returns the entries matching the filters, preserving input
// order. The source slice is never mutated; a fresh slice is returned
// even when every entry matches.
func Apply(entries []*models.Entry, f Filters) []*models.Entry {
	matched := make([]*models.Entry, 0, len(entries))
	for _, entry := range entries {
		if matches(entry, f) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func matches(e *models.Entry, f Filters) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Title), needle) &&
			!strings.Contains(strings.ToLower(e.Content), needle) {
			return false
		}
	}

	if len(f.Tags) > 0 {
		any := false
		for _, tag := range f.Tags {
			if e.HasTag(tag) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	if f.Folder != "" && e.Folder != f.Folder {
		return false
	}

	if f.DateRange != nil {
		if e.Date.Before(f.DateRange.Start) || e.Date.After(f.DateRange.End) {
			return false
		}
	}

	return true
}
