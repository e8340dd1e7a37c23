package skelegen

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Reporter prints generation summaries and scale tables
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, forceColors bool) *Reporter {
	return &Reporter{w: w, useColors: ShouldUseColors(forceColors)}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintResult outputs the batch generation summary
func (r *Reporter) PrintResult(result *GenerateResult, outputDir string) {
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "Generated stylesheets in", r.useColors), outputDir)
	fmt.Fprintf(r.w, "  Workspaces scanned: %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "  Files written:      %d\n", len(result.FilesWritten))
	fmt.Fprintf(r.w, "  Rules generated:    %d\n", result.RulesGenerated)

	for _, f := range result.FilesWritten {
		fmt.Fprintf(r.w, "    %s\n", RenderStyle(StyleCyan, f, r.useColors))
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(r.w, "  %s %s\n", RenderStyle(StyleYellow, "Warning:", r.useColors), w)
	}
}

// PrintScale outputs the steps of a scale with their fluid values
func (r *Reporter) PrintScale(steps []ScaleStep, fluid FluidStrategy) {
	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		id := s.ID
		if s.IsBase {
			id += " (base)"
		}
		rows = append(rows, []string{id, s.VariableName, formatNumber(s.Min), formatNumber(s.Max), FluidValue(fluid, s.Min, s.Max)})
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	numeric := cell.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("step", "variable", "min px", "max px", "value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := cell
			if col == 2 || col == 3 {
				base = numeric
			}
			if !r.useColors {
				return base
			}
			switch {
			case row == table.HeaderRow:
				return base.Inherit(StyleCyan)
			case row >= 0 && row < len(steps) && steps[row].IsBase:
				return base.Inherit(StyleGreen)
			case col == 4:
				return base.Inherit(StyleGray)
			}
			return base
		})

	fmt.Fprintln(r.w, t.Render())
}
