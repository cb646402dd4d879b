// File: pkg/scan/gitignore.go
package scan

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// GitignoreLite holds the patterns of a project's .gitignore file under
// deliberately simplified matching semantics: a pattern matches when it
// occurs as a substring of the root-relative path, or when the basename
// matches it as a glob. Negation ('!'), directory anchors ('/') and
// double-star patterns are not supported; such lines are treated as literal
// patterns. Callers needing faithful gitignore behavior would swap the
// implementation behind the same IsIgnored contract.
type GitignoreLite struct {
	patterns []string
}

// LoadGitignore reads the .gitignore file at the project root, skipping
// blank lines and comments and trimming surrounding whitespace. A missing
// file, an unreadable file, or enabled=false all yield an empty matcher; a
// scan never fails because of its ignore file.
func LoadGitignore(root string, enabled bool, logger *zap.Logger) *GitignoreLite {
	gi := &GitignoreLite{}
	if !enabled {
		return gi
	}

	path := filepath.Join(root, ".gitignore")
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read .gitignore", zap.String("path", path), zap.Error(err))
		}
		return gi
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		gi.patterns = append(gi.patterns, line)
	}
	logger.Debug("Loaded .gitignore patterns",
		zap.String("path", path),
		zap.Int("patternCount", len(gi.patterns)))
	return gi
}

// Patterns returns the loaded pattern list in file order.
func (g *GitignoreLite) Patterns() []string {
	if g == nil {
		return nil
	}
	return g.patterns
}

// IsIgnored reports whether the candidate matches any loaded pattern, and
// returns the matching pattern. relPath is the slash-separated path relative
// to the project root; base is its final element.
func (g *GitignoreLite) IsIgnored(relPath, base string) (string, bool) {
	if g == nil {
		return "", false
	}
	for _, pat := range g.patterns {
		if strings.Contains(relPath, pat) {
			return pat, true
		}
		if GlobPattern(pat).Matches(base) {
			return pat, true
		}
	}
	return "", false
}
