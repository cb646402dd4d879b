// File: pkg/scan/glob.go
package scan

import (
	"path"
	"strings"
)

// GlobPattern is a shell-style wildcard pattern ('*' and '?'). The same value
// type backs the filename ignore lists, directory pruning, the allow-set of
// well-known filenames, and gitignore basename checks.
type GlobPattern string

// Matches reports whether name matches the pattern. Matching is
// case-sensitive. A malformed pattern never matches.
func (p GlobPattern) Matches(name string) bool {
	ok, err := path.Match(string(p), name)
	return err == nil && ok
}

// MatchesAny reports whether name matches at least one pattern in the list.
// An empty list never matches.
func MatchesAny(name string, patterns []GlobPattern) bool {
	_, ok := FirstMatch(name, patterns)
	return ok
}

// FirstMatch returns the first pattern in the list that matches name.
func FirstMatch(name string, patterns []GlobPattern) (GlobPattern, bool) {
	for _, p := range patterns {
		if p.Matches(name) {
			return p, true
		}
	}
	return "", false
}

// ParsePatternList splits a pipe-delimited pattern string into an ordered
// pattern list. Empty segments and surrounding whitespace are dropped.
func ParsePatternList(s string) []GlobPattern {
	if s == "" {
		return nil
	}
	var patterns []GlobPattern
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			patterns = append(patterns, GlobPattern(part))
		}
	}
	return patterns
}

// ParseStringList splits a pipe-delimited string into plain (non-glob)
// entries, used for the path-substring and path-prefix ignore lists.
func ParseStringList(s string) []string {
	if s == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
