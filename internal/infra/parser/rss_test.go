package parser_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsdash/internal/domain/entity"
	"newsdash/internal/infra/parser"
)

func newTestClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func TestRSSParser_Parse_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <item>
      <title><![CDATA[Race Report]]></title>
      <link>https://example.com/report</link>
      <description><![CDATA[<p>Victory &amp; celebration</p>]]></description>
      <pubDate>Mon, 15 Jan 2024 10:30:00 +0000</pubDate>
    </item>
    <item>
      <title>Second Item</title>
      <link>https://example.com/second</link>
      <description>Short description</description>
      <pubDate>2024-01-14 08:00:00</pubDate>
    </item>
  </channel>
</rss>`
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	p := parser.NewRSSParser("Autosport F1", server.URL, newTestClient())

	entries, err := p.Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries length = %d, want 2", len(entries))
	}

	first := entries[0]
	if first.Title != "Race Report" {
		t.Errorf("Title = %q, want %q (CDATA unwrapped)", first.Title, "Race Report")
	}
	if first.Content != "Victory & celebration" {
		t.Errorf("Content = %q, want cleaned text", first.Content)
	}
	if first.Published != "2024-01-15 10:30" {
		t.Errorf("Published = %q, want %q", first.Published, "2024-01-15 10:30")
	}
	if first.Source != "Autosport F1" || first.Category != "Autosport F1" {
		t.Errorf("Source/Category = %q/%q, want adapter name for both", first.Source, first.Category)
	}
	if first.Link != "https://example.com/report" {
		t.Errorf("Link = %q, want item link", first.Link)
	}

	// SQL-style date is the last candidate in the chain.
	if entries[1].Published != "2024-01-14 08:00" {
		t.Errorf("entries[1].Published = %q, want %q", entries[1].Published, "2024-01-14 08:00")
	}
}

func TestRSSParser_Parse_EmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Empty Feed</title>
    <link>https://example.com</link>
  </channel>
</rss>`
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	p := parser.NewRSSParser("Empty", server.URL, newTestClient())

	entries, err := p.Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil for empty feed", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries length = %d, want 0", len(entries))
	}
}

func TestRSSParser_Parse_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	p := parser.NewRSSParser("Broken", server.URL, newTestClient())

	entries, err := p.Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse() error = %v, want nil (handled failure)", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries length = %d, want 0", len(entries))
	}
}

func TestRSSParser_Parse_MissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Sparse Feed</title>
    <link>https://example.com</link>
    <item>
      <link>https://example.com/bare</link>
    </item>
  </channel>
</rss>`
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	p := parser.NewRSSParser("Sparse", server.URL, newTestClient())

	entries, err := p.Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}

	e := entries[0]
	if e.Title != entity.NoTitle {
		t.Errorf("Title = %q, want placeholder %q", e.Title, entity.NoTitle)
	}
	if e.Content != entity.NoContent {
		t.Errorf("Content = %q, want placeholder %q", e.Content, entity.NoContent)
	}
	if e.Published != entity.NoDate {
		t.Errorf("Published = %q, want placeholder %q", e.Published, entity.NoDate)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate() error = %v, placeholders must satisfy the invariant", err)
	}
}

func TestRSSParser_Parse_UnparseableDateEchoesRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Odd Dates</title>
    <link>https://example.com</link>
    <item>
      <title>Undated</title>
      <description>Body</description>
      <pubDate>sometime last week</pubDate>
    </item>
  </channel>
</rss>`
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	p := parser.NewRSSParser("Odd", server.URL, newTestClient())

	entries, err := p.Parse(context.Background())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries length = %d, want 1", len(entries))
	}
	if entries[0].Published != "sometime last week" {
		t.Errorf("Published = %q, want raw echo", entries[0].Published)
	}
}

type stubContentFetcher struct {
	content string
	err     error
	calls   int
}

func (s *stubContentFetcher) FetchContent(ctx context.Context, url string) (string, error) {
	s.calls++
	return s.content, s.err
}

func TestRSSParser_ContentEnhancement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Short Feed</title>
    <link>https://example.com</link>
    <item>
      <title>Teaser</title>
      <link>https://example.com/full</link>
      <description>tiny</description>
      <pubDate>Mon, 15 Jan 2024 10:30:00 +0000</pubDate>
    </item>
  </channel>
</rss>`
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	t.Run("longer fetched content wins", func(t *testing.T) {
		fetcher := &stubContentFetcher{content: "the much longer full article body"}
		p := parser.NewRSSParser("Short", server.URL, newTestClient())
		p.EnableContentFetch(fetcher, 100)

		entries, err := p.Parse(context.Background())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if fetcher.calls != 1 {
			t.Fatalf("fetcher calls = %d, want 1", fetcher.calls)
		}
		if entries[0].Content != "the much longer full article body" {
			t.Errorf("Content = %q, want fetched content", entries[0].Content)
		}
	})

	t.Run("fetch failure falls back to feed content", func(t *testing.T) {
		fetcher := &stubContentFetcher{err: errors.New("timeout")}
		p := parser.NewRSSParser("Short", server.URL, newTestClient())
		p.EnableContentFetch(fetcher, 100)

		entries, err := p.Parse(context.Background())
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if entries[0].Content != "tiny" {
			t.Errorf("Content = %q, want feed content fallback", entries[0].Content)
		}
	})

	t.Run("sufficient feed content skips fetch", func(t *testing.T) {
		fetcher := &stubContentFetcher{content: "ignored"}
		p := parser.NewRSSParser("Short", server.URL, newTestClient())
		p.EnableContentFetch(fetcher, 2)

		if _, err := p.Parse(context.Background()); err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if fetcher.calls != 0 {
			t.Errorf("fetcher calls = %d, want 0 when content meets threshold", fetcher.calls)
		}
	})
}
