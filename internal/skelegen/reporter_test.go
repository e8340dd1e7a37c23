package skelegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintScale(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	steps := GenerateScale(testWorkspace().TypographyGroups[0].Settings)
	reporter.PrintScale(steps, FluidCalc)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// top border, header, header rule, one row per step, bottom border
	require.Len(t, lines, 4+len(steps))
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "variable")
	assert.Contains(t, lines[1], "min px")
	assert.True(t, strings.HasPrefix(lines[2], "├"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"))

	assert.Contains(t, lines[4], "--text-m")
	assert.Contains(t, lines[4], "(base)")
	assert.Contains(t, lines[4], "clamp(1.00rem, calc(0.85rem + 0.37vw), 1.25rem)")
	assert.NotContains(t, lines[3], "(base)")
	assert.Contains(t, lines[3], "13.33")
	assert.NotContains(t, buf.String(), "\x1b[", "no escape codes without colors")
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintResult(&GenerateResult{
		FilesScanned:   2,
		FilesWritten:   []string{"dist/site.css", "dist/site.skele"},
		RulesGenerated: 42,
		Warnings:       []string{"skipped broken.json"},
	}, "dist")

	out := buf.String()
	assert.Contains(t, out, "Generated stylesheets in dist")
	assert.Contains(t, out, "Workspaces scanned: 2")
	assert.Contains(t, out, "Files written:      2")
	assert.Contains(t, out, "Rules generated:    42")
	assert.Contains(t, out, "    dist/site.skele\n")
	assert.Contains(t, out, "Warning: skipped broken.json")
	assert.NotContains(t, out, "\x1b[", "no escape codes without colors")
}

func TestShouldUseColors_Forced(t *testing.T) {
	assert.True(t, ShouldUseColors(true))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))
}
