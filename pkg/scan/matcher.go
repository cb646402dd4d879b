// File: pkg/scan/matcher.go
package scan

import (
	"path"
	"strings"
)

// IsSelectable reports whether a filename is eligible for inclusion at all:
// its extension is in the allow-set, or the name matches one of the
// well-known filename globs. This is a hard pre-filter applied by the
// walker, distinct from the soft ignore classes of the selection pipeline.
// .DS_Store is never selectable, regardless of any pattern list.
func (c *Config) IsSelectable(name string) bool {
	if name == ".DS_Store" {
		return false
	}
	if ext := path.Ext(name); ext != "" && c.AllowExtensions[ext] {
		return true
	}
	return MatchesAny(name, c.AllowFilenames)
}

// IsPathIgnored reports whether a candidate's path matches the configured
// path ignore lists: absolute-prefix patterns match when the absolute path
// starts with the pattern, relative patterns match when the pattern occurs
// anywhere in the root-relative path. Empty lists never match.
func (c *Config) IsPathIgnored(absPath, relPath string) bool {
	_, ok := c.matchedPathPattern(absPath, relPath)
	return ok
}

// matchedPathPattern is IsPathIgnored plus the matched pattern, for skip
// reporting.
func (c *Config) matchedPathPattern(absPath, relPath string) (string, bool) {
	for _, prefix := range c.IgnoreAbsPrefixes {
		if prefix != "" && strings.HasPrefix(absPath, prefix) {
			return prefix, true
		}
	}
	for _, sub := range c.IgnoreRelPaths {
		if sub != "" && strings.Contains(relPath, sub) {
			return sub, true
		}
	}
	return "", false
}
