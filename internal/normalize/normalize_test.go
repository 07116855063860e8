package normalize_test

import (
	"testing"

	"newsdash/internal/normalize"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "strips tags and decodes entities",
			raw:  "<p>A &amp; B</p>",
			want: "A & B",
		},
		{
			name: "collapses whitespace and newlines",
			raw:  "one\n\ttwo   three ",
			want: "one two three",
		},
		{
			name: "nested markup",
			raw:  `<div class="x"><b>bold</b> text</div>`,
			want: "bold text",
		},
		{
			name: "plain text untouched",
			raw:  "already clean",
			want: "already clean",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.CleanText(tt.raw)
			if got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>A &amp; B</p>",
		"plain   text\nwith breaks",
		"<span><em>deep</em></span> tail",
	}
	for _, raw := range inputs {
		once := normalize.CleanText(raw)
		twice := normalize.CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		layouts []string
		want    string
	}{
		{
			name:    "ISO with literal Z",
			raw:     "2024-01-15T10:30:00Z",
			layouts: normalize.NewsAPIDateLayouts,
			want:    "2024-01-15 10:30",
		},
		{
			name:    "RFC 822 with zone",
			raw:     "Mon, 15 Jan 2024 10:30:00 +0000",
			layouts: normalize.RSSDateLayouts,
			want:    "2024-01-15 10:30",
		},
		{
			name:    "RFC 822 without zone",
			raw:     "Mon, 15 Jan 2024 10:30:00",
			layouts: normalize.RSSDateLayouts,
			want:    "2024-01-15 10:30",
		},
		{
			name:    "SQL style",
			raw:     "2024-01-15 10:30:45",
			layouts: normalize.RSSDateLayouts,
			want:    "2024-01-15 10:30",
		},
		{
			name:    "unparseable echoes raw",
			raw:     "yesterday afternoon",
			layouts: normalize.RSSDateLayouts,
			want:    "yesterday afternoon",
		},
		{
			name:    "ISO string against RSS chain echoes raw",
			raw:     "2024-01-15T10:30:00Z",
			layouts: normalize.RSSDateLayouts,
			want:    "2024-01-15T10:30:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.FormatDate(tt.raw, tt.layouts)
			if got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"first wins", []string{"a", "b"}, "a"},
		{"skips empty", []string{"", "", "c"}, "c"},
		{"all empty", []string{"", ""}, ""},
		{"no candidates", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize.FirstNonEmpty(tt.candidates...)
			if got != tt.want {
				t.Errorf("FirstNonEmpty(%v) = %q, want %q", tt.candidates, got, tt.want)
			}
		})
	}
}
