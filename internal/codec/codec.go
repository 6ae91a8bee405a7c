// ABOUTME: Serialization adapter between typed entries and their textual wire form
// ABOUTME: Converts temporal fields to and from RFC3339Nano at every storage boundary

package codec

import (
	"fmt"
	"time"

	"github.com/chroniclehq/chronicle/internal/models"
)

// TimeFormat is the textual encoding for all persisted timestamps.
// RFC3339Nano keeps sub-second precision across the round trip.
const TimeFormat = time.RFC3339Nano

// SerializationError reports a temporal field that could not be parsed
// back from its textual form.
type SerializationError struct {
	Field string
	Value string
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// FormatTime encodes a timestamp for storage or export.
func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

// ParseTime decodes a stored timestamp. The zero string is not valid;
// every persisted entry carries both timestamps.
func ParseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, value)
	if err != nil {
		return time.Time{}, &SerializationError{Field: field, Value: value, Err: err}
	}
	return t, nil
}

// EntryJSON is the wire representation of an entry as it appears in
// backup snapshots. Timestamps are text; everything else carries over
// unchanged. This is the only shape that crosses the export/import
// boundary.
type EntryJSON struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Date         string   `json:"date"`
	Tags         []string `json:"tags"`
	Folder       string   `json:"folder,omitempty"`
	LastModified string   `json:"lastModified"`
}

// EncodeEntry converts a typed entry to its wire form.
func EncodeEntry(e *models.Entry) EntryJSON {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return EntryJSON{
		ID:           e.ID,
		Title:        e.Title,
		Content:      e.Content,
		Date:         FormatTime(e.Date),
		Tags:         tags,
		Folder:       e.Folder,
		LastModified: FormatTime(e.LastModified),
	}
}

// DecodeEntry converts a wire-form entry back into the typed domain
// model, restoring both temporal fields.
func DecodeEntry(w EntryJSON) (*models.Entry, error) {
	date, err := ParseTime("date", w.Date)
	if err != nil {
		return nil, err
	}
	modified, err := ParseTime("lastModified", w.LastModified)
	if err != nil {
		return nil, err
	}
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.Entry{
		ID:           w.ID,
		Title:        w.Title,
		Content:      w.Content,
		Date:         date,
		Tags:         tags,
		Folder:       w.Folder,
		LastModified: modified,
	}, nil
}
