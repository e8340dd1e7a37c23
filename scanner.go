package skelegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks workspace discovery
type ScanStats struct {
	FilesDiscovered int
	FilesSkipped    int
	FilesScanned    int
}

// workspaceExtensions are the snapshot formats the generator reads
var workspaceExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
	".toml": true,
}

// isWorkspaceFile checks the extension and rejects editor backups and
// previously written packages
func isWorkspaceFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return false
	}
	return workspaceExtensions[strings.ToLower(filepath.Ext(base))]
}

// loadGitIgnore compiles sourceDir/.gitignore.
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(sourceDir string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(sourceDir, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// shouldSkipFile determines if a file should be excluded from generation
//
// Two-layer filtering:
// 1. Pattern check (fast): only workspace snapshot extensions
// 2. Gitignore check: skip files ignored by the source dir's .gitignore
func shouldSkipFile(path, sourceDir string, gi *ignore.GitIgnore) bool {
	if !isWorkspaceFile(path) {
		return true
	}

	if gi != nil {
		rel, err := filepath.Rel(sourceDir, path)
		if err == nil && gi.MatchesPath(filepath.ToSlash(rel)) {
			return true
		}
	}

	return false
}

// scanWorkspaceFiles expands include patterns under sourceDir into a
// deduplicated, ordered list of workspace files
func scanWorkspaceFiles(sourceDir string, includes []string, respectGit bool) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	var gi *ignore.GitIgnore
	if respectGit {
		gi = loadGitIgnore(sourceDir)
	}

	for _, pattern := range includes {
		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(filepath.Join(sourceDir, pattern))
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match, sourceDir, gi) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}
