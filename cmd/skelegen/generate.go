package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/yacobolo/skelegen"
	tokens "github.com/yacobolo/skelegen/internal/skelegen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Compile workspace files into stylesheets",
	Long: `Compile every workspace snapshot matched by the include patterns into a
stylesheet (and optionally a .skele package) in the output directory.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("source", "tokens", "Directory holding workspace snapshots")
	f.String("output-dir", "dist", "Output directory for generated files")
	f.StringSlice("include", nil, "Glob patterns for workspace files to include")
	f.String("target", "css", "Output target: css|dialect")
	f.String("fluid", "", "Fluid formula: explicit-vw|calc (default: per target)")
	f.Bool("package", false, "Also write a .skele package per workspace")
	f.String("package-source", "", "Source name recorded in .skele packages")
	f.Bool("pretty", true, "Pretty-print generated CSS")
	f.Bool("respect-gitignore", true, "Skip workspace files ignored by .gitignore")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := skelegen.Generate(cmd.Context(), config)
	if result == nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		tokens.NewReporter(os.Stdout, config.ForceColors).PrintResult(result, config.OutputDir)
	}

	if err != nil {
		log.FromContext(cmd.Context()).Error("some workspaces failed", "err", err)
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}
