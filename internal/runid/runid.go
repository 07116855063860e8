// Package runid generates the per-invocation identifier that correlates log
// entries with the documents a run produced. The ID is attached to the root
// logger and stamped as a comment into every emitted document.
package runid

import "github.com/google/uuid"

// New returns a fresh run identifier.
func New() string {
	return uuid.New().String()
}
