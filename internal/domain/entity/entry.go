// Package entity defines the core domain entities for the application.
// It contains the normalized Entry record that every content source produces,
// along with its validation rules and domain-specific errors.
package entity

// Placeholder literals used by adapters when upstream data is missing.
// They flow through the pipeline as ordinary field values; the sentinel
// date sorts as a plain string (see aggregate package).
const (
	NoTitle   = "No title"
	NoContent = "No content available"
	NoDate    = "No date available"
)

// Entry represents a single normalized content record from any source
// (RSS/Atom feed, headline API, weather API). Entries are immutable value
// records once constructed: the aggregator only appends and sorts, it never
// mutates fields.
//
// Published carries the canonical "YYYY-MM-DD HH:MM" form so that
// reverse-chronological ordering is a plain lexicographic string comparison.
// Link, Source and Category are optional; an empty Category groups the entry
// under "Uncategorized" at render time.
type Entry struct {
	Title     string
	Content   string
	Published string
	Link      string
	Source    string
	Category  string
}

// Validate checks the adapter invariant: every produced Entry must carry a
// non-empty title, content and published value (placeholder literals count
// as present). Optional fields are not validated.
func (e Entry) Validate() error {
	if e.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if e.Content == "" {
		return &ValidationError{Field: "content", Message: "content is required"}
	}
	if e.Published == "" {
		return &ValidationError{Field: "published", Message: "published is required"}
	}
	return nil
}
