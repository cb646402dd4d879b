package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSelectable(t *testing.T) {
	cfg := NewConfig("/tmp/project")

	tests := []struct {
		name string
		want bool
	}{
		{"main.go", true},
		{"app.ts", true},
		{"index.html", true},
		{"notes.md", true},
		{"Dockerfile", true},
		{"package.json", true},
		{"README", true},
		{"README.rst", true}, // README* well-known glob
		{"LICENSE-MIT", true},
		{"go.mod", true},
		{".gitignore", false}, // dotfiles are not in the allow-set
		{"photo.png", false},
		{"archive.tar.gz", false},
		{"binary", false},
		{"main.GO", false}, // extensions are case-sensitive
		{".DS_Store", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.IsSelectable(tt.name), "IsSelectable(%q)", tt.name)
	}
}

func TestIsSelectableDSStoreAlwaysExcluded(t *testing.T) {
	cfg := NewConfig("/tmp/project")
	// Even a pattern that would allow it cannot bring .DS_Store back.
	cfg.AllowFilenames = append(cfg.AllowFilenames, ".DS_*")
	assert.False(t, cfg.IsSelectable(".DS_Store"))
}

func TestIsPathIgnored(t *testing.T) {
	cfg := NewConfig("/home/dev/project")
	cfg.IgnoreAbsPrefixes = []string{"/home/dev/project/secrets"}
	cfg.IgnoreRelPaths = []string{"generated/", "fixtures"}

	assert.True(t, cfg.IsPathIgnored("/home/dev/project/secrets/key.pem", "secrets/key.pem"))
	assert.True(t, cfg.IsPathIgnored("/home/dev/project/src/generated/api.go", "src/generated/api.go"))
	assert.True(t, cfg.IsPathIgnored("/home/dev/project/test/fixtures_old.go", "test/fixtures_old.go"),
		"relative patterns match anywhere in the path")
	assert.False(t, cfg.IsPathIgnored("/home/dev/project/src/main.go", "src/main.go"))
}

func TestIsPathIgnoredEmptyListsNeverMatch(t *testing.T) {
	cfg := NewConfig("/home/dev/project")
	assert.False(t, cfg.IsPathIgnored("/home/dev/project/src/main.go", "src/main.go"))

	cfg.IgnoreRelPaths = []string{""}
	cfg.IgnoreAbsPrefixes = []string{""}
	assert.False(t, cfg.IsPathIgnored("/home/dev/project/src/main.go", "src/main.go"),
		"empty pattern strings must not become ignore-everything")
}
