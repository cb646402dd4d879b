// File: pkg/scan/detect.go
package scan

import (
	"os"
	"path/filepath"
)

// typeMarker ties a descriptive label to the files and directories that
// indicate it. A label applies when any of Files exists at the project root
// and all of Dirs exist as directories.
type typeMarker struct {
	Label string
	Files []string
	Dirs  []string
}

// typeMarkers is evaluated in order so detected labels come out in a stable
// sequence.
var typeMarkers = []typeMarker{
	{Label: "Node.js", Files: []string{"package.json"}},
	{Label: "Python", Files: []string{"requirements.txt", "setup.py", "pyproject.toml", "Pipfile"}},
	{Label: "Go", Files: []string{"go.mod"}},
	{Label: "Rust", Files: []string{"Cargo.toml"}},
	{Label: "Java", Files: []string{"pom.xml", "build.gradle", "settings.gradle"}},
	{Label: "Ruby", Files: []string{"Gemfile"}},
	{Label: "PHP", Files: []string{"composer.json"}},
	{Label: "Flutter", Files: []string{"pubspec.yaml"}, Dirs: []string{"lib"}},
	{Label: "Docker", Files: []string{"Dockerfile", "docker-compose.yml"}},
}

// DetectProjectTypes inspects marker files in a project root and returns the
// matching labels, or exactly {"Generic"} when nothing matches. The labels
// are descriptive metadata for the report header only; they never influence
// selection decisions.
func DetectProjectTypes(root string) []string {
	var labels []string

	for _, marker := range typeMarkers {
		matched := false
		for _, name := range marker.Files {
			if info, err := os.Stat(filepath.Join(root, name)); err == nil && info.Mode().IsRegular() {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, dir := range marker.Dirs {
			info, err := os.Stat(filepath.Join(root, dir))
			if err != nil || !info.IsDir() {
				matched = false
				break
			}
		}
		if matched {
			labels = append(labels, marker.Label)
		}
	}

	if len(labels) == 0 {
		labels = []string{"Generic"}
	}
	return labels
}
