package render

import (
	"fmt"
	"strings"

	"newsdash/internal/domain/entity"
)

// IndexFilename is the entry-point document in both output shapes.
const IndexFilename = "index.html"

// weatherCategory marks entries the index page embeds directly instead of
// linking out to a per-source page.
const weatherCategory = "Weather"

// SourceFilename derives the per-source page filename from the source
// display name: lowercased, spaces replaced with underscores, ".html"
// suffix. "BBC News" becomes "bbc_news.html".
func SourceFilename(source string) string {
	return strings.ReplaceAll(strings.ToLower(source), " ", "_") + ".html"
}

// RenderSite renders one document per source plus an index document. The
// index embeds weather entries directly and links to every per-source page;
// per-source pages carry the full, untruncated entries.
func (r *Renderer) RenderSite(entries []entity.Entry, title string) map[string]string {
	var weather, rest []entity.Entry
	for _, e := range entries {
		if e.Category == weatherCategory {
			weather = append(weather, e)
		} else {
			rest = append(rest, e)
		}
	}

	groups := r.orderGroups(GroupBySource(rest))
	pages := make(map[string]string, len(groups)+1)

	var index strings.Builder
	if len(weather) > 0 {
		index.WriteString("<div class=\"weather-section\">\n")
		index.WriteString("<h1 class=\"section-title\">Weather</h1>\n")
		for _, e := range weather {
			writeEntry(&index, e, false)
		}
		index.WriteString("</div>\n")
	}
	if len(groups) > 0 {
		index.WriteString("<div class=\"section\">\n")
		index.WriteString("<h1 class=\"section-title\">Sources</h1>\n")
		index.WriteString("<ul class=\"source-list\">\n")
		for _, g := range groups {
			fmt.Fprintf(&index, "<li><a href=\"%s\">%s</a> (%d entries)</li>\n",
				SourceFilename(g.Key), g.Key, len(g.Entries))
		}
		index.WriteString("</ul>\n</div>\n")
	}
	pages[IndexFilename] = r.wrapDocument(title, index.String())

	for _, g := range groups {
		var body strings.Builder
		writeSection(&body, g, false)
		pages[SourceFilename(g.Key)] = r.wrapDocument(g.Key, body.String())
	}

	return pages
}
