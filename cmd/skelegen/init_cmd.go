package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .skelegen.yaml config file",
	Long:  `Create a .skelegen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".skelegen.yaml"); err == nil && !force {
			return fmt.Errorf(".skelegen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".skelegen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .skelegen.yaml")
		return nil
	},
}

const defaultConfig = `# skelegen configuration
# Docs: https://github.com/yacobolo/skelegen

# Shared settings
verbose: false

# Generation settings
generate:
  source: tokens
  output-dir: dist
  include:
    - "**/*.json"
    - "**/*.yaml"
    - "**/*.toml"
  target: css              # css | dialect
  fluid: ""                # explicit-vw | calc (empty = per target)
  package: false           # also write .skele packages
  package-source: ""
  pretty: true
  respect-gitignore: true

# Preview server settings
serve:
  addr: 127.0.0.1:7420
  workspace: ""
  pretty: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
