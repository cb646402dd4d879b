// File: pkg/scan/pipeline.go
package scan

import "path"

// Decide classifies one candidate against the configuration and the loaded
// gitignore patterns. The evaluation order is fixed: gitignore, then
// filename pattern, then path substring, then size; the first matching class
// wins and becomes the reported skip reason. A gitignored oversized file is
// therefore a gitignore skip, not a size skip. Decide is pure: no I/O, no
// side effects.
func Decide(c FileCandidate, cfg *Config, gi *GitignoreLite) Decision {
	base := path.Base(c.RelPath)

	if cfg.UseGitignore {
		if pat, ok := gi.IsIgnored(c.RelPath, base); ok {
			return Decision{Reason: SkipGitignore, Pattern: pat}
		}
	}

	if pat, ok := FirstMatch(base, cfg.IgnoreFiles); ok {
		return Decision{Reason: SkipFilePattern, Pattern: string(pat)}
	}

	if pat, ok := cfg.matchedPathPattern(c.AbsPath, c.RelPath); ok {
		return Decision{Reason: SkipPathPattern, Pattern: pat}
	}

	if IsOversized(c.Size, cfg.MaxFileSize) {
		return Decision{Reason: SkipTooLarge}
	}

	return Decision{Include: true}
}
