// Package normalize provides pure text-cleaning and date-normalization
// helpers shared by all source adapters. The helpers are free functions so
// adapters compose them instead of inheriting shared state.
package normalize

import (
	"html"
	"regexp"
	"strings"
	"time"
)

// canonicalLayout is the only published-date representation entries carry
// after adapter processing. It sorts reverse-chronologically under plain
// lexicographic string comparison.
const canonicalLayout = "2006-01-02 15:04"

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// RSSDateLayouts is the ordered candidate chain for feed publication dates:
// RFC 822 with zone offset, RFC 822 without zone, then SQL-style.
// "2" in the day position accepts both padded and unpadded days.
var RSSDateLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05",
	"2006-01-02 15:04:05",
}

// NewsAPIDateLayouts holds the single ISO-8601-with-literal-Z layout the
// headline API emits.
var NewsAPIDateLayouts = []string{"2006-01-02T15:04:05Z"}

// CleanText strips markup tags, decodes HTML entities, collapses consecutive
// whitespace (including newlines) into single spaces and trims the result.
func CleanText(raw string) string {
	s := tagPattern.ReplaceAllString(raw, "")
	s = html.UnescapeString(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// FormatDate tries each candidate layout in order and reformats the first
// match to the canonical "YYYY-MM-DD HH:MM" form. When no layout matches it
// returns the raw string unchanged; callers must treat the unchanged echo as
// a parse failure and pick their own fallback.
func FormatDate(raw string, layouts []string) string {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(canonicalLayout)
		}
	}
	return raw
}

// FirstNonEmpty returns the first non-empty candidate, or "" when every
// candidate is empty. It is the explicit ordered-candidate resolution used
// for upstream field fallback chains.
func FirstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
