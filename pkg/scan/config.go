// File: pkg/scan/config.go
package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultMaxFileSize is the per-file size cap applied when the caller does
// not configure one: 2 MiB.
const DefaultMaxFileSize int64 = 2 * 1024 * 1024

// ProjectConfigName is the optional per-project override file read from a
// project root.
const ProjectConfigName = ".codesnap.yaml"

// Base ignore lists, pipe-delimited. Caller-supplied extras are appended to
// the parsed form of these; the base entries are never removed.
const (
	DefaultIgnoreFiles = "*.log|*.tmp|*.bak|*.swp|*.pid|*.seed|*.lock|*.min.js|*.min.css|*.map|" +
		"package-lock.json|yarn.lock|pnpm-lock.yaml|Pipfile.lock|Cargo.lock|go.sum|" +
		".env|.env.*|*.pem|*.key|id_rsa*|Thumbs.db|desktop.ini|" + ProjectConfigName
	DefaultIgnoreDirs = "node_modules|.git|.svn|.hg|dist|build|out|target|vendor|__pycache__|" +
		".idea|.vscode|venv|.venv|env|.tox|coverage|htmlcov|.pytest_cache|.mypy_cache|" +
		".gradle|.mvn|bin|obj|.next|.nuxt|.cache|.parcel-cache|Pods|DerivedData|.dart_tool|.pub-cache"
)

// defaultAllowExtensions is the fixed allow-set of file extensions eligible
// for inclusion. Matching is case-sensitive.
var defaultAllowExtensions = []string{
	".py", ".pyx", ".pyi", ".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".vue",
	".java", ".kt", ".kts", ".rs", ".go", ".c", ".cpp", ".h", ".hpp", ".cs",
	".rb", ".php", ".swift", ".dart", ".html", ".css", ".scss", ".sass",
	".md", ".json", ".yaml", ".yml", ".xml", ".toml", ".ini", ".sql",
	".sh", ".bash", ".proto", ".graphql", ".tf",
}

// defaultAllowFilenames is the fixed allow-set of well-known filenames,
// matched as globs against the basename.
var defaultAllowFilenames = []GlobPattern{
	"Dockerfile", "docker-compose.yml", "Makefile", "CMakeLists.txt",
	"package.json", "tsconfig.json", "webpack.config.js", "vite.config.js",
	"requirements.txt", "setup.py", "pyproject.toml", "Pipfile",
	"pom.xml", "build.gradle", "settings.gradle",
	"go.mod", "Cargo.toml", "composer.json", "Gemfile", "Rakefile",
	"pubspec.yaml", "README*", "LICENSE*",
}

// Config is the immutable per-run configuration for scanning one project
// root. Build it once with NewConfig, adjust fields before first use, and
// never mutate it afterwards; derived copies come from ForRoot and
// ApplyProjectOverrides.
type Config struct {
	Root         string // project root directory
	MaxFileSize  int64  // files larger than this are reported as size skips
	UseGitignore bool   // honor a per-project .gitignore file

	IgnoreFiles       []GlobPattern // filename ignore patterns (base + extras)
	IgnoreDirs        []GlobPattern // directory basename patterns pruned during the walk
	IgnoreRelPaths    []string      // substrings matched against the root-relative path
	IgnoreAbsPrefixes []string      // prefixes matched against the absolute path

	AllowExtensions map[string]bool // extension allow-set
	AllowFilenames  []GlobPattern   // well-known filename allow-set
}

// NewConfig returns a configuration for the given project root with all
// documented defaults: 2 MiB size cap, gitignore honoring on, and the base
// ignore and allow lists.
func NewConfig(root string) *Config {
	exts := make(map[string]bool, len(defaultAllowExtensions))
	for _, ext := range defaultAllowExtensions {
		exts[ext] = true
	}
	return &Config{
		Root:            root,
		MaxFileSize:     DefaultMaxFileSize,
		UseGitignore:    true,
		IgnoreFiles:     ParsePatternList(DefaultIgnoreFiles),
		IgnoreDirs:      ParsePatternList(DefaultIgnoreDirs),
		AllowExtensions: exts,
		AllowFilenames:  append([]GlobPattern(nil), defaultAllowFilenames...),
	}
}

// ForRoot returns a copy of the configuration bound to a different project
// root. The pattern lists are shared, not copied; they are read-only after
// construction.
func (c *Config) ForRoot(root string) *Config {
	derived := *c
	derived.Root = root
	return &derived
}

// projectOverride is the schema of an optional .codesnap.yaml file at a
// project root. All fields are additive except max_file_size, which replaces
// the configured cap for that project.
type projectOverride struct {
	IgnoreFiles []string `yaml:"ignore_files"`
	IgnoreDirs  []string `yaml:"ignore_dirs"`
	IgnorePaths []string `yaml:"ignore_paths"`
	Extensions  []string `yaml:"extensions"`
	MaxFileSize int64    `yaml:"max_file_size"`
}

// ApplyProjectOverrides returns a derived configuration with any
// .codesnap.yaml override at the project root applied. The receiver is never
// mutated, so a base configuration can be shared across projects. A missing
// override file is not an error; an unreadable or malformed one is logged
// and skipped.
func (c *Config) ApplyProjectOverrides(logger *zap.Logger) *Config {
	path := filepath.Join(c.Root, ProjectConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read project config", zap.String("path", path), zap.Error(err))
		}
		return c
	}

	var override projectOverride
	if err := yaml.Unmarshal(data, &override); err != nil {
		logger.Warn("Failed to parse project config", zap.String("path", path), zap.Error(err))
		return c
	}

	derived := *c
	if len(override.IgnoreFiles) > 0 {
		derived.IgnoreFiles = appendPatterns(c.IgnoreFiles, override.IgnoreFiles)
	}
	if len(override.IgnoreDirs) > 0 {
		derived.IgnoreDirs = appendPatterns(c.IgnoreDirs, override.IgnoreDirs)
	}
	if len(override.IgnorePaths) > 0 {
		derived.IgnoreRelPaths = appendStrings(c.IgnoreRelPaths, override.IgnorePaths)
	}
	if len(override.Extensions) > 0 {
		exts := make(map[string]bool, len(c.AllowExtensions)+len(override.Extensions))
		for ext := range c.AllowExtensions {
			exts[ext] = true
		}
		for _, ext := range override.Extensions {
			exts[ext] = true
		}
		derived.AllowExtensions = exts
	}
	if override.MaxFileSize > 0 {
		derived.MaxFileSize = override.MaxFileSize
	}
	logger.Debug("Applied project config overrides", zap.String("path", path))
	return &derived
}

// appendPatterns clones base before appending so derived configurations never
// share backing arrays with the original.
func appendPatterns(base []GlobPattern, extras []string) []GlobPattern {
	combined := make([]GlobPattern, len(base), len(base)+len(extras))
	copy(combined, base)
	for _, e := range extras {
		if e != "" {
			combined = append(combined, GlobPattern(e))
		}
	}
	return combined
}

func appendStrings(base []string, extras []string) []string {
	combined := make([]string, len(base), len(base)+len(extras))
	copy(combined, base)
	for _, e := range extras {
		if e != "" {
			combined = append(combined, e)
		}
	}
	return combined
}

// Validate reports configuration errors a caller should surface before
// starting a run.
func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("project root is required")
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max file size must be positive, got %d", c.MaxFileSize)
	}
	return nil
}
