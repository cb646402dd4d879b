// File: pkg/scan/runner.go
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Project pairs a project root with the report file it produces.
type Project struct {
	Name   string // directory basename, used in logs and report filenames
	Root   string // project root path
	Output string // destination path for the report
}

// ProjectResult is the outcome of scanning one project. Err is per-project:
// one failed project never stops the others.
type ProjectResult struct {
	Project Project
	Stats   *RunStats
	Err     error
}

// DiscoverProjects lists the immediate subdirectories of inputDir, each one
// a project root, in sorted order.
func DiscoverProjects(inputDir, outputDir string) ([]Project, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", inputDir, err)
	}

	var projects []Project
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		projects = append(projects, Project{
			Name:   name,
			Root:   filepath.Join(inputDir, name),
			Output: filepath.Join(outputDir, name+"_report.txt"),
		})
	}
	return projects, nil
}

// RunAll scans projects with a worker pool. Parallelism is across projects
// only, never within one: each project's walk, report file and RunStats are
// fully independent, so workers share nothing. workers <= 0 means one worker
// per CPU. Results come back sorted by project name.
func RunAll(projects []Project, base *Config, workers int, logger *zap.Logger) []ProjectResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(projects) {
		workers = len(projects)
	}
	logger.Debug("Starting project workers", zap.Int("workers", workers), zap.Int("projects", len(projects)))

	jobs := make(chan Project, len(projects))
	results := make(chan ProjectResult, len(projects))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		workerLogger := logger.With(zap.Int("workerID", w))
		go func() {
			defer wg.Done()
			for p := range jobs {
				results <- scanOne(p, base, workerLogger)
			}
		}()
	}

	for _, p := range projects {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]ProjectResult, 0, len(projects))
	for res := range results {
		collected = append(collected, res)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Project.Name < collected[j].Project.Name
	})
	return collected
}

// scanOne derives the project's configuration, opens its report file, and
// runs the scan. Whatever was written before a failure stays on disk; there
// is no all-or-nothing guarantee for a report.
func scanOne(p Project, base *Config, logger *zap.Logger) ProjectResult {
	cfg := base.ForRoot(p.Root).ApplyProjectOverrides(logger)

	out, err := os.Create(p.Output)
	if err != nil {
		return ProjectResult{Project: p, Err: fmt.Errorf("failed to create report file %s: %w", p.Output, err)}
	}
	defer out.Close()

	stats, err := ScanProject(cfg, out, logger)
	return ProjectResult{Project: p, Stats: stats, Err: err}
}
