package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yacobolo/skelegen/internal/skelegen"
)

var previewCmd = &cobra.Command{
	Use:   "preview <workspace> <component-id>",
	Short: "Print the scoped preview stylesheet of a component",
	Long: `Compile one component of a workspace under a fresh scope class, together
with the workspace variables it needs for a live preview.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := skelegen.LoadWorkspace(args[0])
		if err != nil {
			return err
		}
		component, ok := ws.FindComponent(args[1])
		if !ok {
			return fmt.Errorf("component %q not found in %s", args[1], args[0])
		}

		fluid, err := skelegen.ParseFluidStrategy(getStringWithFallback("fluid", "generate.fluid", ""), skelegen.FluidExplicitVW)
		if err != nil {
			return err
		}
		opts := skelegen.AssembleOptions{Fluid: fluid, Logger: log.FromContext(cmd.Context())}

		var scoped skelegen.ScopedStylesheet
		if scope, _ := cmd.Flags().GetString("scope"); scope != "" {
			scoped = skelegen.ScopeComponentWithID(ws, component, scope, opts)
		} else {
			scoped = skelegen.ScopeComponent(ws, component, opts)
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(scoped)
		}
		fmt.Print(scoped.CSS)
		return nil
	},
}

func init() {
	previewCmd.Flags().String("scope", "", "Scope class to use instead of a generated one")
	previewCmd.Flags().Bool("json", false, "Print {scopeId, css} as JSON")
	previewCmd.Flags().String("fluid", "", "Fluid formula: explicit-vw|calc")
}
