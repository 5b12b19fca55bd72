// Package search implements substring matching over in-memory text.
package search

import (
	"strings"

	"github.com/WhimsicallyDandy/minigrep/internal/core/ports"
)

// SubstringSearcher implements the Searcher interface using plain substring
// containment
type SubstringSearcher struct {
	query         string
	caseSensitive bool
}

// NewSearcher creates a new Searcher for the given query. For
// case-insensitive searches the query is lowercased once here rather than on
// every line.
func NewSearcher(query string, caseSensitive bool) ports.Searcher {
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	return &SubstringSearcher{
		query:         query,
		caseSensitive: caseSensitive,
	}
}

// Search implements the Searcher interface
func (s *SubstringSearcher) Search(contents string) []string {
	if s.caseSensitive {
		return Sensitive(s.query, contents)
	}
	return scanLines(contents, func(line string) bool {
		return strings.Contains(strings.ToLower(line), s.query)
	})
}

// Sensitive returns the lines of contents containing query as an exact
// substring. Returned lines are views into contents; no per-line allocation
// happens.
func Sensitive(query, contents string) []string {
	return scanLines(contents, func(line string) bool {
		return strings.Contains(line, query)
	})
}

// Insensitive returns the lines of contents whose lowercased form contains
// the lowercased query. The returned lines keep their original casing.
func Insensitive(query, contents string) []string {
	query = strings.ToLower(query)
	return scanLines(contents, func(line string) bool {
		return strings.Contains(strings.ToLower(line), query)
	})
}

// scanLines walks contents line by line and collects the lines for which
// match returns true, preserving order. Lines end at '\n' with a single
// trailing '\r' stripped; a trailing terminator does not produce a final
// empty line. Every collected line is a contiguous substring of contents.
func scanLines(contents string, match func(string) bool) []string {
	var results []string
	for len(contents) > 0 {
		line := contents
		if i := strings.IndexByte(contents, '\n'); i >= 0 {
			line = contents[:i]
			contents = contents[i+1:]
		} else {
			contents = ""
		}
		line = strings.TrimSuffix(line, "\r")
		if match(line) {
			results = append(results, line)
		}
	}
	return results
}
