// Package aggregate collects entries from all configured source adapters,
// isolating per-adapter failures, and merges them into one reverse-
// chronologically sorted list. The sort here is the only place cross-source
// ordering is decided.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"newsdash/internal/domain/entity"
	"newsdash/internal/infra/parser"
)

// Service invokes each parser in turn and merges the results. Adapters trap
// their own network failures; errors or panics escaping an adapter are
// configuration-level bugs this service catches so one bad source never
// aborts aggregation.
type Service struct {
	parsers []parser.Parser
}

// NewService creates an aggregation service over the given parsers. Parsers
// are invoked sequentially in the order provided.
func NewService(parsers []parser.Parser) Service {
	return Service{parsers: parsers}
}

// Stats summarizes one collection run.
type Stats struct {
	Sources  int
	Entries  int
	Failed   int
	Duration time.Duration
}

// Collect runs every parser, concatenates the results and sorts the merged
// list descending by published date. Published is a canonical
// "YYYY-MM-DD HH:MM" string, so the comparison is plain lexicographic; the
// sort is stable for ties. Sentinel dates sort as ordinary strings:
// "No date available" lands above all "20xx-..." values under descending
// order because 'N' > '2'.
func (s Service) Collect(ctx context.Context) ([]entity.Entry, *Stats) {
	logger := slog.Default()
	start := time.Now()
	stats := &Stats{Sources: len(s.parsers)}

	var merged []entity.Entry
	for _, p := range s.parsers {
		entries, err := s.parseOne(ctx, p)
		if err != nil {
			stats.Failed++
			logger.Error("source failed, skipping its contribution",
				slog.String("source", p.Name()),
				slog.Any("error", err))
			continue
		}
		logger.Info("source parsed",
			slog.String("source", p.Name()),
			slog.Int("entries", len(entries)))
		merged = append(merged, entries...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Published > merged[j].Published
	})

	stats.Entries = len(merged)
	stats.Duration = time.Since(start)
	return merged, stats
}

// parseOne shields the run from a single adapter: a panic inside Parse is
// converted into an error for the caller to log and skip.
func (s Service) parseOne(ctx context.Context, p parser.Parser) (entries []entity.Entry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entries = nil
			err = fmt.Errorf("parser panicked: %v", r)
		}
	}()
	return p.Parse(ctx)
}
