package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeGitignore(t *testing.T, root, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte(content), 0o644))
}

func TestLoadGitignoreSkipsCommentsAndBlanks(t *testing.T) {
	root := t.TempDir()
	writeGitignore(t, root, "# build output\n\n  *.log  \nnode_modules\n\n# secrets\n.env\n")

	gi := LoadGitignore(root, true, zap.NewNop())
	assert.Equal(t, []string{"*.log", "node_modules", ".env"}, gi.Patterns(),
		"comments and blank lines are skipped, whitespace is trimmed")
}

func TestLoadGitignoreMissingFile(t *testing.T) {
	gi := LoadGitignore(t.TempDir(), true, zap.NewNop())
	assert.Empty(t, gi.Patterns())

	_, ok := gi.IsIgnored("src/main.go", "main.go")
	assert.False(t, ok)
}

func TestLoadGitignoreDisabled(t *testing.T) {
	root := t.TempDir()
	writeGitignore(t, root, "*.log\n")

	gi := LoadGitignore(root, false, zap.NewNop())
	assert.Empty(t, gi.Patterns(), "disabled gitignore loads no patterns")
}

func TestGitignoreLiteIsIgnored(t *testing.T) {
	root := t.TempDir()
	writeGitignore(t, root, "*.log\nbuild\ntmp/cache\n")
	gi := LoadGitignore(root, true, zap.NewNop())

	tests := []struct {
		relPath string
		base    string
		pattern string
		ignored bool
	}{
		{"app.log", "app.log", "*.log", true},          // basename glob
		{"deep/nested/app.log", "app.log", "*.log", true},
		{"build/out.txt", "out.txt", "build", true},    // path substring
		{"rebuild/out.txt", "out.txt", "build", true},  // substring semantics, documented approximation
		{"tmp/cache/x.go", "x.go", "tmp/cache", true},
		{"src/main.go", "main.go", "", false},
	}

	for _, tt := range tests {
		pat, ok := gi.IsIgnored(tt.relPath, tt.base)
		assert.Equal(t, tt.ignored, ok, "IsIgnored(%q)", tt.relPath)
		if tt.ignored {
			assert.Equal(t, tt.pattern, pat)
		}
	}
}

func TestGitignoreLiteNoNegationSupport(t *testing.T) {
	root := t.TempDir()
	writeGitignore(t, root, "*.log\n!keep.log\n")
	gi := LoadGitignore(root, true, zap.NewNop())

	// The negation line is treated as a literal pattern, not a re-include.
	_, ok := gi.IsIgnored("keep.log", "keep.log")
	assert.True(t, ok, "simplified matcher has no negation semantics")
}

func TestGitignoreLiteNilReceiver(t *testing.T) {
	var gi *GitignoreLite
	assert.Nil(t, gi.Patterns())
	_, ok := gi.IsIgnored("a/b", "b")
	assert.False(t, ok)
}
