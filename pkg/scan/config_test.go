package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig("/proj")

	assert.Equal(t, "/proj", cfg.Root)
	assert.Equal(t, DefaultMaxFileSize, cfg.MaxFileSize)
	assert.True(t, cfg.UseGitignore)
	assert.NotEmpty(t, cfg.IgnoreFiles)
	assert.NotEmpty(t, cfg.IgnoreDirs)
	assert.Empty(t, cfg.IgnoreRelPaths)
	assert.Empty(t, cfg.IgnoreAbsPrefixes)
	assert.True(t, cfg.AllowExtensions[".go"])
	assert.Contains(t, cfg.IgnoreDirs, GlobPattern("node_modules"))
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig("")
	assert.ErrorContains(t, cfg.Validate(), "root")

	cfg = NewConfig("/proj")
	cfg.MaxFileSize = 0
	assert.ErrorContains(t, cfg.Validate(), "max file size")
}

func TestForRoot(t *testing.T) {
	base := NewConfig("/a")
	derived := base.ForRoot("/b")

	assert.Equal(t, "/b", derived.Root)
	assert.Equal(t, "/a", base.Root, "the base is untouched")
	assert.Equal(t, base.MaxFileSize, derived.MaxFileSize)
}

func TestApplyProjectOverrides(t *testing.T) {
	root := t.TempDir()
	override := `
ignore_dirs:
  - generated
ignore_files:
  - "*.snap"
ignore_paths:
  - fixtures/
extensions:
  - .zig
max_file_size: 1024
`
	require.NoError(t, os.WriteFile(filepath.Join(root, ProjectConfigName), []byte(override), 0o644))

	base := NewConfig(root)
	derived := base.ApplyProjectOverrides(zap.NewNop())

	assert.Contains(t, derived.IgnoreDirs, GlobPattern("generated"))
	assert.Contains(t, derived.IgnoreFiles, GlobPattern("*.snap"))
	assert.Contains(t, derived.IgnoreRelPaths, "fixtures/")
	assert.True(t, derived.AllowExtensions[".zig"])
	assert.Equal(t, int64(1024), derived.MaxFileSize)

	// Overrides are additive; the base lists survive in the derived copy.
	assert.Contains(t, derived.IgnoreDirs, GlobPattern("node_modules"))

	// The base configuration is never mutated.
	assert.NotContains(t, base.IgnoreDirs, GlobPattern("generated"))
	assert.False(t, base.AllowExtensions[".zig"])
	assert.Equal(t, DefaultMaxFileSize, base.MaxFileSize)
}

func TestApplyProjectOverridesMissingFile(t *testing.T) {
	base := NewConfig(t.TempDir())
	assert.Same(t, base, base.ApplyProjectOverrides(zap.NewNop()),
		"no override file means no derived copy")
}

func TestApplyProjectOverridesMalformedYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ProjectConfigName), []byte("{not yaml"), 0o644))

	base := NewConfig(root)
	assert.Same(t, base, base.ApplyProjectOverrides(zap.NewNop()),
		"a malformed override is logged and skipped")
}
