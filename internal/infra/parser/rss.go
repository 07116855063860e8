package parser

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"newsdash/internal/domain/entity"
	"newsdash/internal/normalize"
)

// rssUserAgent is sent per request; the client is never mutated globally.
const rssUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

var cdataPattern = regexp.MustCompile(`<!\[CDATA\[(.*?)\]\]>`)

// RSSParser converts one RSS/Atom feed into normalized entries using the
// gofeed library. Both source and category of every produced entry carry the
// configured display name.
type RSSParser struct {
	name           string
	url            string
	client         *http.Client
	contentFetcher ContentFetcher
	threshold      int
}

// NewRSSParser creates an adapter for the feed at url with the given display
// name. The HTTP client is injected so transport configuration (timeouts,
// TLS) stays per-request rather than process-global.
func NewRSSParser(name, url string, client *http.Client) *RSSParser {
	return &RSSParser{name: name, url: url, client: client}
}

// EnableContentFetch turns on full-content enhancement: items whose cleaned
// feed content is shorter than threshold characters are re-fetched from
// their link via f, falling back to the feed content on any failure.
func (p *RSSParser) EnableContentFetch(f ContentFetcher, threshold int) {
	p.contentFetcher = f
	p.threshold = threshold
}

// Name returns the configured display name of the feed.
func (p *RSSParser) Name() string {
	return p.name
}

// Parse fetches and converts the feed. A fetch failure or a feed with zero
// parsed items is logged and yields an empty slice.
func (p *RSSParser) Parse(ctx context.Context) ([]entity.Entry, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = rssUserAgent
	fp.Client = p.client

	feed, err := fp.ParseURLWithContext(p.url, ctx)
	if err != nil {
		slog.Warn("failed to fetch feed",
			slog.String("source", p.name),
			slog.String("url", p.url),
			slog.Any("error", err))
		return nil, nil
	}
	if len(feed.Items) == 0 {
		slog.Warn("feed has no items",
			slog.String("source", p.name),
			slog.String("url", p.url))
		return nil, nil
	}

	entries := make([]entity.Entry, 0, len(feed.Items))
	for _, it := range feed.Items {
		entries = append(entries, p.convertItem(ctx, it))
	}
	return entries, nil
}

// convertItem maps a single feed item onto the Entry model: CDATA unwrapping
// on title and content, the ordered content fallback chain, markup cleaning
// and date normalization.
func (p *RSSParser) convertItem(ctx context.Context, it *gofeed.Item) entity.Entry {
	title := strings.TrimSpace(stripCDATA(it.Title))
	if title == "" {
		title = entity.NoTitle
	}

	// Structured content -> summary/description -> placeholder.
	content := normalize.FirstNonEmpty(it.Content, it.Description, entity.NoContent)
	content = normalize.CleanText(stripCDATA(content))
	content = p.enhanceContent(ctx, it.Link, content)

	published := normalize.FirstNonEmpty(it.Published, it.Updated)
	if published == "" {
		published = entity.NoDate
	} else {
		published = normalize.FormatDate(published, normalize.RSSDateLayouts)
	}

	return entity.Entry{
		Title:     title,
		Content:   content,
		Published: published,
		Link:      it.Link,
		Source:    p.name,
		Category:  p.name,
	}
}

// enhanceContent fetches the full article body when the feed content is too
// short. It never fails: any fetch error or a shorter extraction falls back
// to the feed content.
func (p *RSSParser) enhanceContent(ctx context.Context, link, feedContent string) string {
	if p.contentFetcher == nil || link == "" {
		return feedContent
	}
	if len(feedContent) >= p.threshold {
		return feedContent
	}

	full, err := p.contentFetcher.FetchContent(ctx, link)
	if err != nil {
		slog.Warn("content fetch failed, using feed content",
			slog.String("source", p.name),
			slog.String("url", link),
			slog.Any("error", err))
		return feedContent
	}
	full = normalize.CleanText(full)
	if len(full) > len(feedContent) {
		return full
	}
	return feedContent
}

// stripCDATA unwraps literal <![CDATA[...]]> markers, keeping the payload.
func stripCDATA(s string) string {
	return cdataPattern.ReplaceAllString(s, "$1")
}
