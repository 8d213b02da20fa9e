package listing

import (
	"path"
	"path/filepath"
)

// Excluder filters listing entries by matching glob patterns against the
// file basename. Matching is case-sensitive.
//
// Typical patterns cover platform metadata and temp markers:
//   - .DS_Store, Thumbs.db
//   - ._* (macOS resource forks)
//   - ~$* (Office lock files)
//   - *.boxnote, *.tmp
type Excluder struct {
	patterns []string
}

// NewExcluder creates an excluder from basename glob patterns
func NewExcluder(patterns []string) *Excluder {
	return &Excluder{patterns: patterns}
}

// Match reports whether the basename of relativePath matches any pattern
func (e *Excluder) Match(relativePath string) bool {
	if e == nil || len(e.patterns) == 0 {
		return false
	}

	base := path.Base(relativePath)
	for _, pattern := range e.patterns {
		if pattern == "" {
			continue
		}
		// filepath.Match only errors on malformed patterns; those never match
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
