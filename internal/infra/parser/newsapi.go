package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"newsdash/internal/domain/entity"
	"newsdash/internal/normalize"
)

// NewsAPIParser converts NewsAPI article listings into normalized entries.
// The API key is passed as a query parameter; the top-headlines endpoint
// additionally gets a fixed country filter.
type NewsAPIParser struct {
	name   string
	url    string
	apiKey string
	client *http.Client
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// NewNewsAPIParser creates an adapter for a NewsAPI endpoint with the given
// display name and API key.
func NewNewsAPIParser(name, endpoint, apiKey string, client *http.Client) *NewsAPIParser {
	return &NewsAPIParser{name: name, url: endpoint, apiKey: apiKey, client: client}
}

// Name returns the configured display name of the headline source.
func (p *NewsAPIParser) Name() string {
	return p.name
}

// Parse fetches the endpoint and converts its articles. A missing API key
// skips the network call entirely; non-2xx responses and bodies whose status
// field is not "ok" are logged and yield an empty slice.
func (p *NewsAPIParser) Parse(ctx context.Context) ([]entity.Entry, error) {
	if p.apiKey == "" {
		slog.Warn("newsapi key required, skipping source",
			slog.String("source", p.name),
			slog.String("url", p.url))
		return nil, nil
	}

	reqURL, err := p.buildURL()
	if err != nil {
		return nil, fmt.Errorf("build newsapi url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build newsapi request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Warn("failed to fetch headlines",
			slog.String("source", p.name),
			slog.Any("error", err))
		return nil, nil
	}
	defer resp.Body.Close()

	var body newsAPIResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || decodeErr != nil || body.Status != "ok" {
		message := body.Message
		if message == "" {
			message = "Unknown error"
		}
		slog.Warn("newsapi returned an error",
			slog.String("source", p.name),
			slog.Int("status_code", resp.StatusCode),
			slog.String("message", message))
		return nil, nil
	}

	entries := make([]entity.Entry, 0, len(body.Articles))
	for _, a := range body.Articles {
		entries = append(entries, p.convertArticle(a))
	}
	return entries, nil
}

// buildURL attaches the API key and, for the top-headlines endpoint only,
// the fixed country filter.
func (p *NewsAPIParser) buildURL() (string, error) {
	parsed, err := url.Parse(p.url)
	if err != nil {
		return "", err
	}
	q := parsed.Query()
	q.Set("apiKey", p.apiKey)
	if strings.Contains(p.url, "top-headlines") {
		q.Set("country", "us")
	}
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

// convertArticle maps one article onto the Entry model. The date uses the
// single ISO layout and falls back to the literal placeholder on failure,
// never the raw string (unlike the feed adapter's raw echo).
func (p *NewsAPIParser) convertArticle(a newsAPIArticle) entity.Entry {
	published := entity.NoDate
	if a.PublishedAt != "" {
		if formatted := normalize.FormatDate(a.PublishedAt, normalize.NewsAPIDateLayouts); formatted != a.PublishedAt {
			published = formatted
		}
	}

	title := a.Title
	if title == "" {
		title = entity.NoTitle
	}

	sourceName := a.Source.Name
	if sourceName == "" {
		sourceName = "Unknown"
	}

	return entity.Entry{
		Title:     title,
		Content:   normalize.FirstNonEmpty(a.Description, a.Content, entity.NoContent),
		Published: published,
		Link:      a.URL,
		Source:    fmt.Sprintf("%s - %s", p.name, sourceName),
		Category:  p.name,
	}
}
