package main

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"os"
	"time"

	"newsdash/internal/config"
	"newsdash/internal/infra/fetcher"
	"newsdash/internal/infra/parser"
	"newsdash/internal/observability/logging"
	"newsdash/internal/render"
	"newsdash/internal/runid"
	"newsdash/internal/usecase/aggregate"
)

const pageTitle = "News Dashboard"

func main() {
	runID := runid.New()
	logger := initLogger(runID)

	cfg := config.Load()
	feeds, err := config.LoadFeeds(cfg.FeedsFile)
	if err != nil {
		logger.Error("failed to load feed list", slog.Any("error", err))
		os.Exit(1)
	}

	parsers := buildParsers(logger, cfg, feeds)
	if len(parsers) == 0 {
		logger.Error("no sources configured, nothing to aggregate")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	svc := aggregate.NewService(parsers)
	entries, stats := svc.Collect(ctx)
	logger.Info("aggregation completed",
		slog.Int("sources", stats.Sources),
		slog.Int("entries", stats.Entries),
		slog.Int("failed", stats.Failed),
		slog.Duration("duration", stats.Duration))

	renderer := render.NewRenderer(runID)
	switch cfg.RenderMode {
	case config.RenderModeSite:
		pages := renderer.RenderSite(entries, pageTitle)
		if err := render.WriteSite(cfg.OutputDir, pages); err != nil {
			logger.Error("failed to write site output", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("site written",
			slog.String("dir", cfg.OutputDir),
			slog.Int("pages", len(pages)))
	default:
		doc := renderer.RenderDocument(entries, pageTitle)
		if err := render.WriteDocument(cfg.OutputDir, render.IndexFilename, doc); err != nil {
			logger.Error("failed to write dashboard output", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("dashboard written",
			slog.String("path", cfg.OutputDir+"/"+render.IndexFilename))
	}
}

// initLogger sets up the process-wide structured logger, tagged with the
// run ID so one run's log lines can be correlated with its output pages.
func initLogger(runID string) *slog.Logger {
	logger := logging.NewLogger().With(slog.String("run_id", runID))
	slog.SetDefault(logger)
	return logger
}

// buildParsers wires the configured sources. RSS feeds are always included;
// the NewsAPI and weather sources require their API keys and are skipped
// with a warning when the key is absent.
func buildParsers(logger *slog.Logger, cfg config.Config, feeds config.Feeds) []parser.Parser {
	client := createHTTPClient()

	var contentFetcher parser.ContentFetcher
	fetchConfig := fetcher.LoadConfigFromEnv()
	if fetchConfig.Enabled {
		contentFetcher = fetcher.NewReadabilityFetcher(fetchConfig)
		logger.Info("full-content extraction enabled",
			slog.Int("threshold", fetchConfig.Threshold),
			slog.Duration("timeout", fetchConfig.Timeout))
	}

	var parsers []parser.Parser
	for _, f := range feeds.Feeds {
		p := parser.NewRSSParser(f.Name, f.URL, client)
		if contentFetcher != nil {
			p.EnableContentFetch(contentFetcher, fetchConfig.Threshold)
		}
		parsers = append(parsers, p)
	}

	if feeds.NewsAPI.Endpoint != "" {
		if cfg.NewsAPIKey == "" {
			logger.Warn("NEWS_API key not set, skipping headlines source",
				slog.String("source", feeds.NewsAPI.Name))
		} else {
			parsers = append(parsers, parser.NewNewsAPIParser(feeds.NewsAPI.Name, feeds.NewsAPI.Endpoint, cfg.NewsAPIKey, client))
		}
	}

	if cfg.WeatherAPIKey == "" {
		logger.Warn("WEATHER_API key not set, skipping weather source")
	} else {
		parsers = append(parsers, parser.NewWeatherParser(cfg.WeatherAPIKey, cfg.WeatherLat, cfg.WeatherLon, client))
	}

	return parsers
}

// createHTTPClient returns the shared HTTP client for all sources. TLS 1.2+
// is enforced.
func createHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}
