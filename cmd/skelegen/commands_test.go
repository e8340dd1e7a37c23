package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/skelegen/internal/skelegen"
)

func TestFindScaleGroup(t *testing.T) {
	ws := skelegen.Workspace{
		TypographyGroups: []skelegen.ScaleGroup{{ID: "type"}},
		SpacingGroups:    []skelegen.ScaleGroup{{ID: "space"}},
	}

	tests := []struct {
		id     string
		want   string
		wantOK bool
	}{
		{"", "type", true},
		{"type", "type", true},
		{"space", "space", true},
		{"nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, ok := findScaleGroup(ws, tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, g.ID)
		})
	}
}

func TestWriteCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeCompletion(&buf, shell))
			assert.Contains(t, buf.String(), "skelegen")
		})
	}

	assert.Error(t, writeCompletion(&bytes.Buffer{}, "tcsh"))
}

func TestPreviewCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	require.NoError(t, os.WriteFile(path, []byte(serveWorkspace), 0644))

	resetKoanf()
	rootCmd.SetArgs([]string{"preview", path, "btn", "--scope", "sk-fixed", "--json"})
	require.NoError(t, rootCmd.Execute())

	resetKoanf()
	rootCmd.SetArgs([]string{"preview", path, "missing"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestScaleCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.yaml")
	ws, err := skelegen.DecodeWorkspace([]byte(serveWorkspace), "json")
	require.NoError(t, err)
	require.NoError(t, skelegen.SaveWorkspace(path, ws))

	resetKoanf()
	rootCmd.SetArgs([]string{"scale", "--workspace", path, "--group", "sp"})
	require.NoError(t, rootCmd.Execute())

	resetKoanf()
	rootCmd.SetArgs([]string{"scale", "--workspace", path, "--group", "missing"})
	assert.Error(t, rootCmd.Execute())
}
