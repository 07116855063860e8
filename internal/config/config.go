// Package config loads runtime configuration for the dashboard binary:
// API credentials and output settings from environment variables, and the
// feed list from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"newsdash/internal/infra/parser"
	pkgconfig "newsdash/pkg/config"
)

// Render modes accepted via RENDER_MODE.
const (
	RenderModeSingle = "single" // one index.html with every entry
	RenderModeSite   = "site"   // index page plus one page per source
)

// DefaultFeedsFile is the feed list path used when FEEDS_FILE is unset.
const DefaultFeedsFile = "feeds.yaml"

// Config holds the environment-derived settings for a dashboard run.
type Config struct {
	NewsAPIKey    string
	WeatherAPIKey string
	OutputDir     string
	RenderMode    string
	FeedsFile     string
	WeatherLat    float64
	WeatherLon    float64
}

// Load reads configuration from the environment. Missing API keys are not
// an error here; the corresponding sources are skipped at wiring time.
func Load() Config {
	cfg := Config{
		NewsAPIKey:    pkgconfig.GetEnvString("NEWS_API", ""),
		WeatherAPIKey: pkgconfig.GetEnvString("WEATHER_API", ""),
		OutputDir:     pkgconfig.GetEnvString("OUTPUT_DIR", "./public"),
		RenderMode:    pkgconfig.GetEnvString("RENDER_MODE", RenderModeSingle),
		FeedsFile:     pkgconfig.GetEnvString("FEEDS_FILE", DefaultFeedsFile),
		WeatherLat:    pkgconfig.GetEnvFloat("WEATHER_LAT", parser.DefaultWeatherLat),
		WeatherLon:    pkgconfig.GetEnvFloat("WEATHER_LON", parser.DefaultWeatherLon),
	}

	if cfg.RenderMode != RenderModeSingle && cfg.RenderMode != RenderModeSite {
		slog.Warn("unknown render mode, falling back to single-page output",
			slog.String("render_mode", cfg.RenderMode))
		cfg.RenderMode = RenderModeSingle
	}
	return cfg
}

// FeedSource names a single RSS or Atom feed to aggregate.
type FeedSource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// NewsAPISource configures the NewsAPI headlines source.
type NewsAPISource struct {
	Name     string `yaml:"name"`
	Endpoint string `yaml:"endpoint"`
}

// Feeds is the YAML feed list loaded from FEEDS_FILE.
type Feeds struct {
	Feeds   []FeedSource  `yaml:"feeds"`
	NewsAPI NewsAPISource `yaml:"newsapi"`
}

// DefaultFeeds returns the built-in feed list used when no feeds file exists.
func DefaultFeeds() Feeds {
	return Feeds{
		Feeds: []FeedSource{
			{Name: "Motorsport", URL: "https://www.autosport.com/rss/feed/f1"},
			{Name: "WRC News", URL: "https://www.autosport.com/rss/feed/wrc"},
			{Name: "EDM News", URL: "https://edm.com/.rss/full/"},
		},
		NewsAPI: NewsAPISource{
			Name:     "US News",
			Endpoint: "https://newsapi.org/v2/top-headlines",
		},
	}
}

// LoadFeeds reads the feed list from path. A missing file is not an error:
// the built-in defaults are returned so the dashboard works out of the box.
func LoadFeeds(path string) (Feeds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("feeds file not found, using built-in feed list",
				slog.String("path", path))
			return DefaultFeeds(), nil
		}
		return Feeds{}, fmt.Errorf("read feeds file %s: %w", path, err)
	}

	var feeds Feeds
	if err := yaml.Unmarshal(data, &feeds); err != nil {
		return Feeds{}, fmt.Errorf("parse feeds file %s: %w", path, err)
	}

	for i, f := range feeds.Feeds {
		if f.Name == "" || f.URL == "" {
			return Feeds{}, fmt.Errorf("feeds file %s: entry %d is missing a name or url", path, i)
		}
	}
	if feeds.NewsAPI.Endpoint != "" && feeds.NewsAPI.Name == "" {
		feeds.NewsAPI.Name = DefaultFeeds().NewsAPI.Name
	}
	return feeds, nil
}
