package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobPatternMatches(t *testing.T) {
	tests := []struct {
		pattern GlobPattern
		name    string
		want    bool
	}{
		{"*.log", "app.log", true},
		{"*.log", "app.log.txt", false},
		{"*.log", "LOG", false},
		{"?.go", "a.go", true},
		{"?.go", "ab.go", false},
		{"README*", "README.md", true},
		{"README*", "README", true},
		{"README*", "readme.md", false}, // case-sensitive
		{"Dockerfile", "Dockerfile", true},
		{".env.*", ".env.local", true},
		{"[", "anything", false}, // malformed pattern never matches
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pattern.Matches(tt.name),
			"pattern %q against %q", tt.pattern, tt.name)
	}
}

func TestFirstMatch(t *testing.T) {
	patterns := []GlobPattern{"*.tmp", "*.log", "app.*"}

	pat, ok := FirstMatch("app.log", patterns)
	assert.True(t, ok)
	assert.Equal(t, GlobPattern("*.log"), pat, "first matching pattern wins")

	_, ok = FirstMatch("main.go", patterns)
	assert.False(t, ok)

	_, ok = FirstMatch("main.go", nil)
	assert.False(t, ok, "empty pattern list never matches")
}

func TestParsePatternList(t *testing.T) {
	assert.Nil(t, ParsePatternList(""))
	assert.Equal(t,
		[]GlobPattern{"*.log", "*.tmp", "node_modules"},
		ParsePatternList("*.log|*.tmp|node_modules"))
	assert.Equal(t,
		[]GlobPattern{"*.log", "*.tmp"},
		ParsePatternList(" *.log || *.tmp | "),
		"empty segments and whitespace are dropped")
}

func TestParseStringList(t *testing.T) {
	assert.Nil(t, ParseStringList(""))
	assert.Equal(t, []string{"generated/", "testdata"}, ParseStringList("generated/|testdata"))
}
