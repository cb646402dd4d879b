package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}
}

func TestDetectProjectTypesGeneric(t *testing.T) {
	labels := DetectProjectTypes(t.TempDir())
	assert.Equal(t, []string{"Generic"}, labels,
		"no recognized markers yields exactly the Generic label")
}

func TestDetectProjectTypesSingle(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "go.mod")
	assert.Equal(t, []string{"Go"}, DetectProjectTypes(root))
}

func TestDetectProjectTypesMultiple(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "package.json", "Dockerfile")
	assert.Equal(t, []string{"Node.js", "Docker"}, DetectProjectTypes(root),
		"labels apply independently and come out in marker order")
}

func TestDetectProjectTypesFlutterNeedsLibDir(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "pubspec.yaml")
	assert.Equal(t, []string{"Generic"}, DetectProjectTypes(root),
		"pubspec.yaml alone is not Flutter")

	require.NoError(t, os.Mkdir(filepath.Join(root, "lib"), 0o755))
	assert.Equal(t, []string{"Flutter"}, DetectProjectTypes(root))
}

func TestDetectProjectTypesDirMarkerMustBeFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "go.mod"), 0o755))
	assert.Equal(t, []string{"Generic"}, DetectProjectTypes(root),
		"a directory named like a marker file does not count")
}
