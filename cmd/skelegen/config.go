package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/skelegen/internal/skelegen"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".skelegen.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set).
	// Unset flags are skipped so their defaults never shadow config keys.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (SKELEGEN_* prefix)
	if err := k.Load(env.Provider("SKELEGEN_", ".", func(s string) string {
		// SKELEGEN_GENERATE_SOURCE -> generate.source
		// SKELEGEN_SERVE_ADDR -> serve.addr
		// SKELEGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SKELEGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() skelegen.Config {
	config := skelegen.Config{
		SourceDir:   getStringWithFallback("source", "generate.source", "tokens"),
		OutputDir:   getStringWithFallback("output-dir", "generate.output-dir", "dist"),
		Target:      skelegen.Target(getStringWithFallback("target", "generate.target", string(skelegen.TargetCSS))),
		Fluid:       getStringWithFallback("fluid", "generate.fluid", ""),
		Package:     getBoolWithFallback("package", "generate.package", false),
		Source:      getStringWithFallback("package-source", "generate.package-source", ""),
		Pretty:      getBoolWithFallback("pretty", "generate.pretty", true),
		RespectGit:  getBoolWithFallback("respect-gitignore", "generate.respect-gitignore", true),
		Verbose:     getBoolWithFallback("verbose", "verbose", false),
		ForceColors: getBoolWithFallback("color", "color", false),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("generate.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = []string{
			"**/*.json",
			"**/*.yaml",
			"**/*.toml",
		}
	}

	return config
}

// serveConfig holds preview server settings
type serveConfig struct {
	Addr      string
	Workspace string
	Fluid     string
	Pretty    bool
}

// buildServeConfig constructs the preview server settings from koanf state.
func buildServeConfig() serveConfig {
	return serveConfig{
		Addr:      getStringWithFallback("addr", "serve.addr", "127.0.0.1:7420"),
		Workspace: getStringWithFallback("workspace", "serve.workspace", ""),
		Fluid:     getStringWithFallback("fluid", "serve.fluid", ""),
		Pretty:    getBoolWithFallback("pretty", "serve.pretty", true),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}
