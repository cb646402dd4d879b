// File: pkg/scan/walker.go
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Walker traverses a project root in deterministic lexicographic order,
// pruning whole subtrees whose basename matches a directory ignore pattern
// and yielding only plain files that pass the allow-set pre-filter. The
// walker holds no traversal state; every call to Walk restarts from the
// root.
type Walker struct {
	cfg    *Config
	logger *zap.Logger

	// OnPrune, when set, is invoked once for every directory subtree the
	// walk prunes, so the run layer can count pruned subtrees as skips.
	OnPrune func(path string)
}

// NewWalker returns a walker bound to a configuration.
func NewWalker(cfg *Config, logger *zap.Logger) *Walker {
	return &Walker{cfg: cfg, logger: logger}
}

// Walk enumerates candidate files under the project root and invokes fn for
// each one in path order. Files under pruned directories are never yielded,
// even when their own name would pass the allow-set. An error returned by fn
// stops the walk; traversal errors on individual entries are logged and
// skipped.
func (w *Walker) Walk(fn func(FileCandidate) error) error {
	root := w.cfg.Root
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("Error accessing path during walk", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if MatchesAny(name, w.cfg.IgnoreDirs) {
				w.logger.Debug("Pruning ignored directory", zap.String("directory", path))
				if w.OnPrune != nil {
					w.OnPrune(path)
				}
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if isHiddenSystemFile(name) {
			return nil
		}
		if !w.cfg.IsSelectable(name) {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = name
		}
		relPath = filepath.ToSlash(relPath)

		var size int64
		if info, infoErr := d.Info(); infoErr == nil {
			size = info.Size()
		} else {
			w.logger.Warn("Failed to stat file during walk", zap.String("path", path), zap.Error(infoErr))
		}

		return fn(FileCandidate{AbsPath: path, RelPath: relPath, Size: size})
	})
}

// isHiddenSystemFile matches macOS metadata files that are pruned outright.
func isHiddenSystemFile(name string) bool {
	return name == ".DS_Store" || strings.HasPrefix(name, "._")
}
