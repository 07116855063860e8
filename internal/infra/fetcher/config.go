// Package fetcher provides optional full-content extraction for feed items
// whose feed-provided body is too short to be useful. Extraction uses the
// Mozilla Readability algorithm via go-shiori/go-readability.
package fetcher

import (
	"time"

	pkgconfig "newsdash/pkg/config"
)

// Config holds content-fetching behavior. Fetching is opt-in: the default
// pipeline uses feed content as-is.
type Config struct {
	Enabled     bool
	Threshold   int           // minimum cleaned feed-content length before fetching
	Timeout     time.Duration // per-request timeout
	MaxBodySize int64         // response size cap in bytes
}

// DefaultConfig returns the defaults used when no environment overrides are set.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		Threshold:   300,
		Timeout:     10 * time.Second,
		MaxBodySize: 5 << 20, // 5MB
	}
}

// LoadConfigFromEnv reads content-fetch configuration from the environment:
//
//	FETCH_FULL_CONTENT       enable full-content extraction (default false)
//	CONTENT_FETCH_THRESHOLD  minimum feed-content length before fetching
//	CONTENT_FETCH_TIMEOUT    per-request timeout (Go duration string)
func LoadConfigFromEnv() Config {
	def := DefaultConfig()
	return Config{
		Enabled:     pkgconfig.GetEnvBool("FETCH_FULL_CONTENT", def.Enabled),
		Threshold:   pkgconfig.GetEnvInt("CONTENT_FETCH_THRESHOLD", def.Threshold),
		Timeout:     pkgconfig.GetEnvDuration("CONTENT_FETCH_TIMEOUT", def.Timeout),
		MaxBodySize: def.MaxBodySize,
	}
}
