// ABOUTME: Entry model representing a single diary entry with tags and folder
// ABOUTME: Provides constructor and modification-time bookkeeping helpers

package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents a single diary entry. Content is rich-text markup
// (HTML) and is treated as an opaque string by every layer below the
// editor. Date is assigned once at creation and never changes;
// LastModified is refreshed on every mutation.
type Entry struct {
	ID           string
	Title        string
	Content      string
	Date         time.Time
	Tags         []string
	Folder       string
	LastModified time.Time
}

// NewEntry creates a new Entry with a generated UUID and both
// timestamps set to the current time, so LastModified >= Date holds
// from the first write onward.
func NewEntry(title, content string, tags []string, folder string) *Entry {
	now := time.Now()
	return &Entry{
		ID:           uuid.New().String(),
		Title:        title,
		Content:      content,
		Date:         now,
		Tags:         tags,
		Folder:       folder,
		LastModified: now,
	}
}

// Touch refreshes LastModified. The new value is guaranteed to be
// strictly greater than the previous one even when two updates land
// within the clock's resolution.
func (e *Entry) Touch() {
	now := time.Now()
	if !now.After(e.LastModified) {
		now = e.LastModified.Add(time.Nanosecond)
	}
	e.LastModified = now
}

// HasTag reports whether the entry carries the given tag.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the entry. Cached collections hand out
// clones so callers cannot mutate the session's view in place.
func (e *Entry) Clone() *Entry {
	c := *e
	if e.Tags != nil {
		c.Tags = make([]string, len(e.Tags))
		copy(c.Tags, e.Tags)
	}
	return &c
}
