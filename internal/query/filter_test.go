// ABOUTME: Tests for the in-memory entry filter
// ABOUTME: Covers AND composition, case folding, and date-range inclusivity

package query

import (
	"testing"
	"time"

	"github.com/chroniclehq/chronicle/internal/models"
)

func testEntries() []*models.Entry {
	beach := models.NewEntry("Beach day", "<p>sun and surf</p>", []string{"travel"}, "Summer")
	work := models.NewEntry("Work notes", "<p>quarterly planning</p>", []string{"work"}, "Office")
	return []*models.Entry{beach, work}
}

func titles(entries []*models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestSearchMatchesTitle(t *testing.T) {
	got := Apply(testEntries(), Filters{Search: "beach"})
	if len(got) != 1 || got[0].Title != "Beach day" {
		t.Errorf("Search beach = %v, want [Beach day]", titles(got))
	}
}

func TestSearchMatchesContent(t *testing.T) {
	got := Apply(testEntries(), Filters{Search: "PLANNING"})
	if len(got) != 1 || got[0].Title != "Work notes" {
		t.Errorf("Search PLANNING = %v, want [Work notes]", titles(got))
	}
}

func TestTagFilter(t *testing.T) {
	got := Apply(testEntries(), Filters{Tags: []string{"work"}})
	if len(got) != 1 || got[0].Title != "Work notes" {
		t.Errorf("Tags [work] = %v, want [Work notes]", titles(got))
	}
}

func TestTagsOrWithinField(t *testing.T) {
	got := Apply(testEntries(), Filters{Tags: []string{"work", "travel"}})
	if len(got) != 2 {
		t.Errorf("Tags [work travel] = %v, want both entries", titles(got))
	}
}

func TestFieldsComposeWithAnd(t *testing.T) {
	// "day" matches the first entry, tag "work" matches the second;
	// together they must match nothing.
	got := Apply(testEntries(), Filters{Search: "day", Tags: []string{"work"}})
	if len(got) != 0 {
		t.Errorf("Search day + Tags [work] = %v, want empty", titles(got))
	}
}

func TestFolderExactMatch(t *testing.T) {
	got := Apply(testEntries(), Filters{Folder: "Summer"})
	if len(got) != 1 || got[0].Title != "Beach day" {
		t.Errorf("Folder Summer = %v, want [Beach day]", titles(got))
	}

	got = Apply(testEntries(), Filters{Folder: "summer"})
	if len(got) != 0 {
		t.Errorf("folder match must be exact, got %v", titles(got))
	}
}

func TestDateRangeInclusiveBothEnds(t *testing.T) {
	day := time.Date(2025, 7, 4, 12, 0, 0, 0, time.Local)
	entry := models.NewEntry("boundary", "", nil, "")
	entry.Date = day

	// Entry date exactly at Start passes.
	got := Apply([]*models.Entry{entry}, Filters{DateRange: &DateRange{
		Start: day,
		End:   day.Add(time.Hour),
	}})
	if len(got) != 1 {
		t.Error("entry at range start excluded; bounds must be inclusive")
	}

	// Entry date exactly at End passes.
	got = Apply([]*models.Entry{entry}, Filters{DateRange: &DateRange{
		Start: day.Add(-time.Hour),
		End:   day,
	}})
	if len(got) != 1 {
		t.Error("entry at range end excluded; bounds must be inclusive")
	}

	// Just outside fails.
	got = Apply([]*models.Entry{entry}, Filters{DateRange: &DateRange{
		Start: day.Add(time.Nanosecond),
		End:   day.Add(time.Hour),
	}})
	if len(got) != 0 {
		t.Error("entry before range start included")
	}
}

func TestEmptyFiltersMatchEverything(t *testing.T) {
	entries := testEntries()
	got := Apply(entries, Filters{})
	if len(got) != len(entries) {
		t.Errorf("empty filters = %d entries, want %d", len(got), len(entries))
	}
}

func TestApplyPreservesOrderAndSource(t *testing.T) {
	entries := testEntries()
	got := Apply(entries, Filters{})

	if got[0].Title != "Beach day" || got[1].Title != "Work notes" {
		t.Errorf("input order not preserved: %v", titles(got))
	}

	// Result is a new slice; appending to it cannot clobber the source.
	_ = append(got, models.NewEntry("extra", "", nil, ""))
	if len(entries) != 2 {
		t.Error("Apply mutated the source collection")
	}
}
