package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"newsdash/internal/domain/entity"
	"newsdash/internal/render"
)

func TestGroupByCategory(t *testing.T) {
	entries := []entity.Entry{
		{Title: "w1", Content: "c", Published: "p", Category: "Weather"},
		{Title: "n1", Content: "c", Published: "p", Category: "US News"},
		{Title: "w2", Content: "c", Published: "p", Category: "Weather"},
		{Title: "x1", Content: "c", Published: "p"},
	}

	groups := render.GroupByCategory(entries)

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	wantKeys := []string{"Weather", "US News", render.UncategorizedKey}
	if diff := cmp.Diff(wantKeys, keys); diff != "" {
		t.Errorf("group keys mismatch (-want +got):\n%s", diff)
	}

	if len(groups[0].Entries) != 2 {
		t.Fatalf("Weather group size = %d, want 2", len(groups[0].Entries))
	}
	if groups[0].Entries[0].Title != "w1" || groups[0].Entries[1].Title != "w2" {
		t.Errorf("Weather group order = [%s, %s], want input order preserved",
			groups[0].Entries[0].Title, groups[0].Entries[1].Title)
	}
}

func TestGroupBySource(t *testing.T) {
	entries := []entity.Entry{
		{Title: "a", Content: "c", Published: "p", Source: "BBC News"},
		{Title: "b", Content: "c", Published: "p"},
	}

	groups := render.GroupBySource(entries)

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Key != "BBC News" {
		t.Errorf("groups[0].Key = %q, want %q", groups[0].Key, "BBC News")
	}
	if groups[1].Key != render.UnknownSourceKey {
		t.Errorf("groups[1].Key = %q, want %q", groups[1].Key, render.UnknownSourceKey)
	}
}
