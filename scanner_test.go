package skelegen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWorkspaceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"tokens/site.json", true},
		{"tokens/site.YAML", true},
		{"tokens/site.yml", true},
		{"tokens/site.toml", true},
		{"tokens/site.skele", false},
		{"tokens/site.css", false},
		{"tokens/.hidden.json", false},
		{"tokens/site.json~", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isWorkspaceFile(tt.path))
		})
	}
}

func TestScanWorkspaceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.json"), "{}")
	writeFile(t, filepath.Join(dir, "brands", "acme.yaml"), "name: acme")
	writeFile(t, filepath.Join(dir, "brands", "notes.txt"), "ignore me")
	writeFile(t, filepath.Join(dir, "drafts", "wip.json"), "{}")
	writeFile(t, filepath.Join(dir, ".gitignore"), "drafts/wip.json\n")

	tests := []struct {
		name        string
		includes    []string
		respectGit  bool
		wantFiles   []string
		wantSkipped int
	}{
		{
			name:        "gitignore respected",
			includes:    []string{"**/*.json", "**/*.yaml"},
			respectGit:  true,
			wantFiles:   []string{"site.json", "brands/acme.yaml"},
			wantSkipped: 1,
		},
		{
			name:       "gitignore disabled",
			includes:   []string{"**/*.json"},
			respectGit: false,
			wantFiles:  []string{"drafts/wip.json", "site.json"},
		},
		{
			name:        "non-workspace matches are skipped",
			includes:    []string{"brands/*"},
			respectGit:  true,
			wantFiles:   []string{"brands/acme.yaml"},
			wantSkipped: 1,
		},
		{
			name:       "overlapping patterns are deduplicated",
			includes:   []string{"*.json", "site.json"},
			respectGit: true,
			wantFiles:  []string{"site.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, stats, err := scanWorkspaceFiles(dir, tt.includes, tt.respectGit)
			require.NoError(t, err)

			var rel []string
			for _, f := range files {
				r, err := filepath.Rel(dir, f)
				require.NoError(t, err)
				rel = append(rel, filepath.ToSlash(r))
			}
			assert.ElementsMatch(t, tt.wantFiles, rel)
			assert.Equal(t, tt.wantSkipped, stats.FilesSkipped)
			assert.Equal(t, len(tt.wantFiles), stats.FilesScanned)
		})
	}
}

func TestScanWorkspaceFiles_BadPattern(t *testing.T) {
	_, _, err := scanWorkspaceFiles(t.TempDir(), []string{"[unclosed"}, false)
	assert.Error(t, err)
}
