package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// WriteDocument writes one HTML document into dir, creating the directory
// when absent and overwriting any previous output unconditionally.
func WriteDocument(dir, filename, html string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteSite writes every page of a multi-document render. Pages are written
// one at a time in deterministic filename order; a failed write aborts the
// remaining pages but does not roll back pages already written.
func WriteSite(dir string, pages map[string]string) error {
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := WriteDocument(dir, name, pages[name]); err != nil {
			return err
		}
	}
	return nil
}
