// Package render groups normalized entries and emits static HTML documents.
// Two output shapes share the same grouped data: a single document with one
// section per category, and a per-source site with an index page.
//
// Entry content is written into the documents as-is: weather entries carry
// pre-rendered HTML fragments while other sources carry cleaned plain text,
// so escaping or re-parsing the content here would corrupt one or the other.
package render

import (
	"fmt"
	"strings"
	"time"

	"newsdash/internal/domain/entity"
)

// maxContentLength caps the per-entry body in the single-document variant.
// Content longer than this is cut and marked with a trailing ellipsis; the
// cut is character-based and can land inside weather markup, which is
// preserved behavior.
const maxContentLength = 500

// Renderer turns a merged entry list into HTML documents. CategoryOrder
// lists the groups emitted first; all remaining groups follow in first-seen
// order.
type Renderer struct {
	CategoryOrder []string

	runID string
	now   func() time.Time
}

// NewRenderer creates a renderer with the default category priority.
// The run ID is stamped as a comment into every emitted document.
func NewRenderer(runID string) *Renderer {
	return &Renderer{
		CategoryOrder: []string{"Weather", "US News"},
		runID:         runID,
		now:           time.Now,
	}
}

// RenderDocument renders all entries into one HTML document with a visual
// section per category.
func (r *Renderer) RenderDocument(entries []entity.Entry, title string) string {
	var body strings.Builder
	for _, g := range r.orderGroups(GroupByCategory(entries)) {
		writeSection(&body, g, true)
	}
	return r.wrapDocument(title, body.String())
}

// orderGroups promotes the configured priority keys to the front, keeping
// first-seen order for the rest.
func (r *Renderer) orderGroups(groups []Group) []Group {
	ordered := make([]Group, 0, len(groups))
	taken := make(map[string]bool, len(r.CategoryOrder))

	for _, key := range r.CategoryOrder {
		for _, g := range groups {
			if g.Key == key {
				ordered = append(ordered, g)
				taken[key] = true
				break
			}
		}
	}
	for _, g := range groups {
		if !taken[g.Key] {
			ordered = append(ordered, g)
		}
	}
	return ordered
}

func writeSection(b *strings.Builder, g Group, truncate bool) {
	b.WriteString("<div class=\"section\">\n")
	fmt.Fprintf(b, "<h1 class=\"section-title\">%s</h1>\n", g.Key)
	for _, e := range g.Entries {
		writeEntry(b, e, truncate)
	}
	b.WriteString("</div>\n")
}

// writeEntry renders one entry. Title and source fall back to literal
// placeholders; the outbound link is included only when present.
func writeEntry(b *strings.Builder, e entity.Entry, truncate bool) {
	title := e.Title
	if title == "" {
		title = "No Title"
	}
	content := e.Content
	if content == "" {
		content = entity.NoContent
	}
	published := e.Published
	if published == "" {
		published = "No date"
	}
	source := e.Source
	if source == "" {
		source = UnknownSourceKey
	}

	if truncate {
		if runes := []rune(content); len(runes) > maxContentLength {
			content = string(runes[:maxContentLength]) + "..."
		}
	}

	b.WriteString("<div class=\"entry\">\n")
	fmt.Fprintf(b, "<h2 class=\"entry-title\">%s</h2>\n", title)
	fmt.Fprintf(b, "<div class=\"entry-meta\">%s | Source: %s</div>\n", published, source)
	fmt.Fprintf(b, "<div class=\"entry-content\">%s</div>\n", content)
	if e.Link != "" {
		fmt.Fprintf(b, "<a class=\"entry-link\" href=\"%s\" target=\"_blank\">Read more →</a>\n", e.Link)
	}
	b.WriteString("</div>\n")
}

// wrapDocument wraps a body in a complete HTML document with the embedded
// stylesheet, the run ID comment and the generation timestamp.
func (r *Renderer) wrapDocument(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", title)
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<style>%s</style>\n", stylesheet)
	b.WriteString("</head>\n<body>\n")
	if r.runID != "" {
		fmt.Fprintf(&b, "<!-- run %s -->\n", r.runID)
	}
	b.WriteString(body)
	fmt.Fprintf(&b, "<div class=\"timestamp\">Generated on %s</div>\n", r.now().Format("2006-01-02 15:04:05"))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
