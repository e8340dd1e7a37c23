package skelegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gosimple/slug"
	"go.uber.org/multierr"

	tokens "github.com/yacobolo/skelegen/internal/skelegen"
)

// now stamps .skele packages
var now = time.Now

// Generate compiles every workspace matched by config.Includes under
// config.SourceDir and writes one stylesheet per workspace into
// config.OutputDir. A failing workspace does not stop the others; all
// failures are returned together with the partial result.
func Generate(ctx context.Context, config Config) (*GenerateResult, error) {
	logger := log.FromContext(ctx)
	result := &GenerateResult{}

	target, err := tokens.ParseTarget(string(config.Target))
	if err != nil {
		return nil, err
	}
	fluid, err := tokens.ParseFluidStrategy(config.Fluid, target.DefaultFluid())
	if err != nil {
		return nil, err
	}

	// 1. Scan workspace files
	files, stats, err := scanWorkspaceFiles(config.SourceDir, config.Includes, config.RespectGit)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = len(files)
	logger.Debug("scanned workspaces", "found", stats.FilesDiscovered, "skipped", stats.FilesSkipped)

	if len(files) == 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("no workspace files matched in %s", config.SourceDir))
		return result, nil
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	opts := tokens.AssembleOptions{Fluid: fluid, Raw: !config.Pretty, Logger: logger}

	// 2. Compile each workspace independently
	var errs error
	outputs := make(map[string]string)
	for _, file := range files {
		logger.Debug("compiling", "file", file)

		ws, err := tokens.LoadWorkspace(file)
		if err != nil {
			errs = multierr.Append(errs, err)
			result.Warnings = append(result.Warnings, fmt.Sprintf("skipped %s: %v", file, err))
			continue
		}

		name := outputName(file, ws)
		if prev, dup := outputs[name]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%s and %s both write %s - later file wins", prev, file, name))
		}
		outputs[name] = file

		compiled := tokens.CompileTarget(ws, target, opts)
		result.RulesGenerated += compiled.Rules

		written, err := writeOutputs(config, name, compiled.CSS)
		result.FilesWritten = append(result.FilesWritten, written...)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", file, err))
		}
	}

	return result, errs
}

// outputName derives the output basename from the workspace name or, when
// unnamed, from the file name
func outputName(file string, ws Workspace) string {
	if name := slug.Make(ws.Name); name != "" {
		return name
	}
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	if name := slug.Make(base); name != "" {
		return name
	}
	return "styles"
}

// writeOutputs writes name.css and, when enabled, name.skele
func writeOutputs(config Config, name, css string) ([]string, error) {
	var written []string

	cssPath := filepath.Join(config.OutputDir, name+".css")
	if err := os.WriteFile(cssPath, []byte(css), 0o644); err != nil {
		return written, fmt.Errorf("write stylesheet: %w", err)
	}
	written = append(written, cssPath)

	if !config.Package {
		return written, nil
	}

	source := config.Source
	if source == "" {
		source = name
	}

	pkgPath := filepath.Join(config.OutputDir, name+tokens.PackageExt)
	f, err := os.Create(pkgPath)
	if err != nil {
		return written, fmt.Errorf("create package: %w", err)
	}
	err = multierr.Append(tokens.WritePackage(f, tokens.NewPackage(css, source, now())), f.Close())
	if err != nil {
		return written, err
	}
	written = append(written, pkgPath)

	return written, nil
}
