// File: pkg/scan/types.go
package scan

// FileCandidate is a file discovered by the walker: its absolute path, its
// slash-separated path relative to the project root, and its size in bytes
// as probed during traversal (0 when the file could not be stat'd).
type FileCandidate struct {
	AbsPath string
	RelPath string
	Size    int64
}

// SkipReason identifies which ignore class excluded a candidate.
type SkipReason int

const (
	SkipNone        SkipReason = iota // candidate was included
	SkipGitignore                     // matched a .gitignore pattern
	SkipFilePattern                   // matched a filename ignore pattern
	SkipPathPattern                   // matched a path prefix or substring
	SkipTooLarge                      // exceeded the configured size cap
)

// String returns the reason tag used in log output.
func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "include"
	case SkipGitignore:
		return "gitignore"
	case SkipFilePattern:
		return "file-pattern"
	case SkipPathPattern:
		return "path-pattern"
	case SkipTooLarge:
		return "too-large"
	default:
		return "unknown"
	}
}

// Decision is the selection pipeline's verdict for one candidate. Pattern
// holds the matched ignore pattern where one applies, so callers can render
// an explanation; the pipeline itself performs no rendering.
type Decision struct {
	Include bool
	Reason  SkipReason
	Pattern string
}

// RunStats accumulates totals for one project's scan. It is owned by the
// single goroutine driving that project and flushed into the report summary
// at the end of the walk.
type RunStats struct {
	Processed        int   // files included in the report
	Skipped          int   // exclusions: all skip classes plus pruned subtrees
	SkippedGitignore int   // subset of Skipped excluded by .gitignore
	TotalBytes       int64 // cumulative size of included files
}

// Add merges other into the receiver, used for cross-project aggregation.
func (s *RunStats) Add(other *RunStats) {
	if other == nil {
		return
	}
	s.Processed += other.Processed
	s.Skipped += other.Skipped
	s.SkippedGitignore += other.SkippedGitignore
	s.TotalBytes += other.TotalBytes
}
