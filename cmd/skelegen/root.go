package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skelegen",
	Short: "Design-token to CSS compiler",
	Long: `Compile design-token workspaces (colors, fluid scales, custom variables,
selectors and components) into one deterministic stylesheet.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := log.InfoLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = log.DebugLevel
		}
		if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
			level = log.ErrorLevel
		}
		cmd.SetContext(log.WithContext(cmd.Context(), newLogger(os.Stderr, level)))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".skelegen.yaml", "Config file path")

	// generate flags are also accepted on the root command, which runs generate
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
