// File: pkg/scan/scan.go
package scan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// ScanProject walks a single project root, classifies every candidate file,
// and streams the report to w. The returned RunStats snapshot is what the
// caller may log or aggregate across projects.
//
// A missing or non-directory root is the only fatal condition. Unreadable
// files degrade to placeholder sections, oversized files to reported skips;
// neither aborts the run.
func ScanProject(cfg *Config, w io.Writer, logger *zap.Logger) (*RunStats, error) {
	start := time.Now()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("project root %s: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root %s is not a directory", cfg.Root)
	}

	projectName := filepath.Base(cfg.Root)
	logger.Info("Starting project scan", zap.String("project", projectName), zap.String("root", cfg.Root))

	gi := LoadGitignore(cfg.Root, cfg.UseGitignore, logger)
	labels := DetectProjectTypes(cfg.Root)
	logger.Debug("Detected project types", zap.String("project", projectName), zap.Strings("labels", labels))

	rw := NewReportWriter(w, cfg, logger)
	if err := rw.WriteHeader(projectName, labels, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}
	if err := rw.WriteTree(); err != nil {
		return nil, fmt.Errorf("failed to write directory tree: %w", err)
	}
	if err := rw.WriteContentsHeader(); err != nil {
		return nil, fmt.Errorf("failed to write contents header: %w", err)
	}

	stats := &RunStats{}
	var oversized []FileCandidate

	walker := NewWalker(cfg, logger)
	walker.OnPrune = func(path string) {
		stats.Skipped++
	}
	err = walker.Walk(func(c FileCandidate) error {
		decision := Decide(c, cfg, gi)
		switch {
		case decision.Include:
			content, readErr := os.ReadFile(c.AbsPath)
			if readErr != nil {
				stats.Processed++
				return rw.WriteUnreadable(c, readErr)
			}
			stats.Processed++
			stats.TotalBytes += int64(len(content))
			return rw.WriteFile(c, content)

		case decision.Reason == SkipTooLarge:
			stats.Skipped++
			// Oversized sections come after all included files.
			oversized = append(oversized, c)

		default:
			stats.Skipped++
			if decision.Reason == SkipGitignore {
				stats.SkippedGitignore++
			}
			logger.Debug("Skipping file",
				zap.String("path", c.RelPath),
				zap.String("reason", decision.Reason.String()),
				zap.String("pattern", decision.Pattern))
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk failed for %s: %w", cfg.Root, err)
	}

	for _, c := range oversized {
		if err := rw.WriteOversized(c, cfg.MaxFileSize); err != nil {
			return stats, fmt.Errorf("failed to write oversized section: %w", err)
		}
	}
	if err := rw.WriteSummary(stats); err != nil {
		return stats, fmt.Errorf("failed to write summary: %w", err)
	}
	if err := rw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush report: %w", err)
	}

	logger.Info("Completed project scan",
		zap.String("project", projectName),
		zap.Int("processed", stats.Processed),
		zap.Int("skipped", stats.Skipped),
		zap.Int64("totalBytes", stats.TotalBytes),
		zap.Duration("elapsed", time.Since(start)))
	return stats, nil
}
