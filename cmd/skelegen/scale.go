package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/skelegen/internal/skelegen"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Print the steps of a fluid scale",
	Long: `Print the steps of a fluid scale with their min/max pixel sizes and
clamp() values. Settings come from flags, or from a scale group of a workspace.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScale,
}

func init() {
	f := scaleCmd.Flags()
	f.String("workspace", "", "Workspace file to read the scale group from")
	f.String("group", "", "Scale group id (spacing or typography)")
	f.String("naming", "space", "Naming convention (--{naming}-{step})")
	f.Float64("min-size", 16, "Base size at the min viewport (px)")
	f.Float64("max-size", 20, "Base size at the max viewport (px)")
	f.Float64("min-ratio", 1.2, "Scale ratio at the min viewport")
	f.Float64("max-ratio", 1.25, "Scale ratio at the max viewport")
	f.String("base", "m", "Base step id")
	f.Int("negative", 2, "Steps below the medium step")
	f.Int("positive", 3, "Steps above the medium step")
	f.String("fluid", "", "Fluid formula: explicit-vw|calc")
}

func runScale(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()

	var settings skelegen.ScaleSettings
	if path, _ := f.GetString("workspace"); path != "" {
		ws, err := skelegen.LoadWorkspace(path)
		if err != nil {
			return err
		}
		id, _ := f.GetString("group")
		group, ok := findScaleGroup(ws, id)
		if !ok {
			return fmt.Errorf("scale group %q not found in %s", id, path)
		}
		settings = group.Settings
	} else {
		settings.NamingConvention, _ = f.GetString("naming")
		settings.MinSize, _ = f.GetFloat64("min-size")
		settings.MaxSize, _ = f.GetFloat64("max-size")
		settings.MinScaleRatio, _ = f.GetFloat64("min-ratio")
		settings.MaxScaleRatio, _ = f.GetFloat64("max-ratio")
		settings.BaseScaleIndex, _ = f.GetString("base")
		settings.NegativeSteps, _ = f.GetInt("negative")
		settings.PositiveSteps, _ = f.GetInt("positive")
		// Flags come from a human, so apply the same limits the editor does
		settings = settings.Clamp()
	}

	fluid, err := skelegen.ParseFluidStrategy(getStringWithFallback("fluid", "generate.fluid", ""), skelegen.FluidExplicitVW)
	if err != nil {
		return err
	}

	color := getBoolWithFallback("color", "color", false)
	skelegen.NewReporter(os.Stdout, color).PrintScale(skelegen.GenerateScale(settings), fluid)
	return nil
}

// findScaleGroup looks the id up among typography then spacing groups; an
// empty id picks the first group found
func findScaleGroup(ws skelegen.Workspace, id string) (skelegen.ScaleGroup, bool) {
	groups := append(append([]skelegen.ScaleGroup{}, ws.TypographyGroups...), ws.SpacingGroups...)
	for _, g := range groups {
		if id == "" || g.ID == id {
			return g, true
		}
	}
	return skelegen.ScaleGroup{}, false
}
