// Package parser provides source adapters that translate heterogeneous
// upstream payloads (RSS/Atom feeds, the NewsAPI headline endpoints, the
// OpenWeather One Call API) into normalized entries.
//
// Adapters trap their own network and decode failures: they log and return
// an empty (or, for weather, partial) slice with a nil error. A non-nil
// error or a panic is a configuration-level failure the aggregator isolates
// per source.
package parser

import (
	"context"

	"newsdash/internal/domain/entity"
)

// Parser is the capability every source adapter implements.
type Parser interface {
	// Name identifies the source in logs and aggregator statistics.
	Name() string
	// Parse fetches the upstream payload and converts it into normalized
	// entries. Handled failures yield an empty slice and a nil error.
	Parse(ctx context.Context) ([]entity.Entry, error)
}

// ContentFetcher retrieves the full article body for a URL. The RSS adapter
// uses it optionally when feed-provided content falls below a threshold.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
}
