package fetcher

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
)

// ReadabilityFetcher implements the parser.ContentFetcher interface by
// downloading the article page and extracting its readable text. Failures
// are returned to the caller, which falls back to the feed content.
type ReadabilityFetcher struct {
	client *http.Client
	config Config
}

// NewReadabilityFetcher creates a fetcher with its own HTTP client. TLS and
// timeout settings live on this client; no global transport state is touched.
func NewReadabilityFetcher(config Config) *ReadabilityFetcher {
	return &ReadabilityFetcher{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
				TLSClientConfig: &tls.Config{
					MinVersion: tls.VersionTLS12,
				},
			},
		},
	}
}

// FetchContent downloads the page at urlStr and returns its extracted
// article text. The response body is size-capped before extraction.
func (f *ReadabilityFetcher) FetchContent(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("build content request: %w", err)
	}
	req.Header.Set("User-Agent", "newsdash/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("content fetch returned %s", resp.Status)
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read content body: %w", err)
	}
	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		return "", fmt.Errorf("content body exceeds %d bytes", f.config.MaxBodySize)
	}

	pageURL, err := url.Parse(urlStr)
	if err != nil {
		pageURL = nil // readability works without a base URL
	}
	if resp.Request != nil && resp.Request.URL != nil {
		pageURL = resp.Request.URL
	}

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), pageURL)
	if err != nil {
		return "", fmt.Errorf("extract article content: %w", err)
	}

	if article.TextContent == "" {
		if article.Content == "" {
			return "", fmt.Errorf("no readable content at %s", urlStr)
		}
		return article.Content, nil
	}
	return article.TextContent, nil
}
