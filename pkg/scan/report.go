// File: pkg/scan/report.go
package scan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	headerRule  = "================================================================================"
	sectionRule = "--------------------------------------------------------------------------------"
)

// ReportWriter renders a project report to a sink: header, directory tree,
// framed per-file sections, then a summary. Output is append-only and
// single-pass; once a section is written it is never revisited.
type ReportWriter struct {
	w      *bufio.Writer
	cfg    *Config
	logger *zap.Logger
}

// NewReportWriter wraps the sink in a buffered writer. Call Flush when the
// report is complete.
func NewReportWriter(w io.Writer, cfg *Config, logger *zap.Logger) *ReportWriter {
	return &ReportWriter{w: bufio.NewWriter(w), cfg: cfg, logger: logger}
}

// WriteHeader writes the report header block: project name, detected type
// labels, and a timestamp.
func (r *ReportWriter) WriteHeader(project string, labels []string, now time.Time) error {
	var b strings.Builder
	b.WriteString(headerRule + "\n")
	fmt.Fprintf(&b, " Project: %s\n", project)
	fmt.Fprintf(&b, " Type: %s\n", strings.Join(labels, ", "))
	fmt.Fprintf(&b, " Generated: %s\n", now.Format(time.RFC3339))
	b.WriteString(headerRule + "\n\n")
	_, err := r.w.WriteString(b.String())
	return err
}

// WriteTree writes the directory-structure listing, honoring the same
// directory ignore patterns as the walker. Ignored subtrees and hidden
// system files never appear.
func (r *ReportWriter) WriteTree() error {
	var b strings.Builder
	b.WriteString(headerRule + "\n")
	b.WriteString(" Project Structure\n")
	b.WriteString(headerRule + "\n\n")
	fmt.Fprintf(&b, "%s/\n", filepath.Base(r.cfg.Root))
	r.writeTreeLevel(&b, r.cfg.Root, "")
	b.WriteString("\n")
	_, err := r.w.WriteString(b.String())
	return err
}

// writeTreeLevel renders one directory level, directories first, each group
// sorted by name.
func (r *ReportWriter) writeTreeLevel(b *strings.Builder, dir, prefix string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Warn("Failed to read directory for tree", zap.String("directory", dir), zap.Error(err))
		return
	}

	kept := entries[:0]
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if MatchesAny(name, r.cfg.IgnoreDirs) {
				continue
			}
		} else if isHiddenSystemFile(name) {
			continue
		}
		kept = append(kept, entry)
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].IsDir() != kept[j].IsDir() {
			return kept[i].IsDir()
		}
		return kept[i].Name() < kept[j].Name()
	})

	for i, entry := range kept {
		connector, extension := "├── ", "│   "
		if i == len(kept)-1 {
			connector, extension = "└── ", "    "
		}
		if entry.IsDir() {
			fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, entry.Name())
			r.writeTreeLevel(b, filepath.Join(dir, entry.Name()), prefix+extension)
		} else {
			fmt.Fprintf(b, "%s%s%s\n", prefix, connector, entry.Name())
		}
	}
}

// WriteContentsHeader introduces the file-contents part of the report.
func (r *ReportWriter) WriteContentsHeader() error {
	_, err := fmt.Fprintf(r.w, "%s\n File Contents\n%s\n\n", headerRule, headerRule)
	return err
}

// WriteFile writes a framed section for an included file: its relative path,
// formatted size, and its content with 1-based line numbers and carriage
// returns stripped. Content that is not decodable as text is replaced with a
// placeholder noting it was binary and omitted.
func (r *ReportWriter) WriteFile(c FileCandidate, content []byte) error {
	if isBinaryContent(content) {
		return r.writeFramed(fmt.Sprintf(" File: %s (BINARY - omitted)", c.RelPath), "")
	}

	var body strings.Builder
	text := strings.ReplaceAll(string(content), "\r", "")
	lines := strings.Split(text, "\n")
	// A trailing newline yields one empty trailing element, not an extra line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		fmt.Fprintf(&body, "%4d | %s\n", i+1, line)
	}

	title := fmt.Sprintf(" File: %s (%s)", c.RelPath, FormatSize(int64(len(content))))
	return r.writeFramed(title, body.String())
}

// WriteUnreadable writes a placeholder section for a file whose content
// could not be read. The scan continues; one bad file never aborts a run.
func (r *ReportWriter) WriteUnreadable(c FileCandidate, readErr error) error {
	r.logger.Warn("Failed to read file content", zap.String("path", c.AbsPath), zap.Error(readErr))
	return r.writeFramed(fmt.Sprintf(" File: %s (UNREADABLE - omitted)", c.RelPath), "")
}

// WriteOversized writes a framed section for a size-skipped file, showing
// both the actual and the threshold size in human units.
func (r *ReportWriter) WriteOversized(c FileCandidate, maxBytes int64) error {
	title := fmt.Sprintf(" Skipped: %s - file too large (%s > %s limit)",
		c.RelPath, FormatSize(c.Size), FormatSize(maxBytes))
	return r.writeFramed(title, "")
}

// WriteSummary writes the trailing summary block from the run's accumulated
// statistics.
func (r *ReportWriter) WriteSummary(stats *RunStats) error {
	var b strings.Builder
	b.WriteString(headerRule + "\n")
	b.WriteString(" Summary\n")
	b.WriteString(headerRule + "\n")
	fmt.Fprintf(&b, "Files processed: %d\n", stats.Processed)
	fmt.Fprintf(&b, "Files skipped: %d (%d via .gitignore)\n", stats.Skipped, stats.SkippedGitignore)
	fmt.Fprintf(&b, "Total size: %s\n", FormatSize(stats.TotalBytes))
	b.WriteString(headerRule + "\n")
	_, err := r.w.WriteString(b.String())
	return err
}

// Flush drains the buffered writer into the sink.
func (r *ReportWriter) Flush() error {
	return r.w.Flush()
}

func (r *ReportWriter) writeFramed(title, body string) error {
	var b strings.Builder
	b.WriteString(sectionRule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(sectionRule + "\n")
	if body != "" {
		b.WriteString(body)
	}
	b.WriteString("\n")
	_, err := r.w.WriteString(b.String())
	return err
}

// FormatSize renders a byte count in human units using 1024-based steps.
func FormatSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", size)
}
