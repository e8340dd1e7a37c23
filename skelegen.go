// Package skelegen compiles design-token workspaces into CSS stylesheets.
//
// A workspace holds color palettes, fluid spacing and typography scales,
// custom variables, selector rules and components. The compiler turns that
// state into one deterministic stylesheet, or into the plugin dialect that
// renames variables and classes for an external page builder.
//
// # Compiling a workspace
//
//	ws, err := skelegen.LoadWorkspace("tokens/site.json")
//	css := skelegen.Assemble(ws, skelegen.AssembleOptions{})
//
// # Batch generation
//
//	config := skelegen.Config{
//		SourceDir: "tokens",
//		OutputDir: "dist",
//		Includes:  []string{"**/*.json"},
//		Pretty:    true,
//	}
//	result, err := skelegen.Generate(ctx, config)
//
// # CLI Tool
//
// skelegen also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/skelegen/cmd/skelegen@latest
package skelegen

import (
	tokens "github.com/yacobolo/skelegen/internal/skelegen"
)

// Re-exported compiler types
type (
	Config           = tokens.Config
	GenerateResult   = tokens.GenerateResult
	Workspace        = tokens.Workspace
	AssembleOptions  = tokens.AssembleOptions
	Result           = tokens.Result
	Target           = tokens.Target
	ScopedStylesheet = tokens.ScopedStylesheet
)

// Output targets
const (
	TargetCSS     = tokens.TargetCSS
	TargetDialect = tokens.TargetDialect
)

// LoadWorkspace reads a JSON, YAML or TOML workspace snapshot
func LoadWorkspace(path string) (Workspace, error) {
	return tokens.LoadWorkspace(path)
}

// Assemble compiles a workspace into a stylesheet
func Assemble(ws Workspace, opts AssembleOptions) string {
	return tokens.Assemble(ws, opts)
}

// AssembleDialect compiles a workspace into the plugin dialect
func AssembleDialect(ws Workspace, opts AssembleOptions) string {
	return tokens.AssembleDialect(ws, opts)
}
