// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"rund/internal/issue"
	"rund/pkg/cueutil"
	"rund/pkg/fspath"
	"rund/pkg/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "rund"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "rund"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix is the prefix for environment variable overrides
	// (RUND_COMPILER, RUND_EXCLUSIONS, RUND_CHATTY, RUND_TMPDIR).
	EnvPrefix = "RUND"
)

//go:embed config_schema.cue
var configSchema string

// FilePath returns the conventional config file path inside dir.
func FilePath(dir string) string {
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
}

// ConfigDir returns the rund configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // config.Dir is too terse at call sites; ConfigDir is what callers grep for
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	base, err := platformConfigBase(runtime.GOOS)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// platformConfigBase returns the per-user configuration root for osName.
// Split out from ConfigDir so each platform branch stays testable without
// faking runtime.GOOS.
func platformConfigBase(osName string) (string, error) {
	switch osName {
	case platform.Windows:
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir, nil
		}
		return filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming"), nil
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	default:
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".config"), nil
	}
}

// loadWithOptions performs option-driven config loading without mutating
// package-level cache state. Callers that want caching can wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("compiler", defaults.Compiler)
	v.SetDefault("exclusions", defaults.Exclusions)
	v.SetDefault("chatty", defaults.Chatty)
	v.SetDefault("tmpdir", defaults.TempDir)

	// Environment overrides sit between the config file and the command
	// line: RUND_COMPILER=ldmd2 beats the file, --compiler=... beats both.
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	resolvedPath, err := locateConfigFile(opts)
	if err != nil {
		return nil, "", err
	}
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", describeLoadFailure(resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate constraints the CUE schema cannot see, e.g. whitespace-only
	// values injected through environment variables.
	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Compare the values against 'rund config show'").
			WithSuggestion("Check RUND_* environment variables for stray whitespace").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// locateConfigFile picks the config file for this invocation. An explicit
// ConfigFilePath must exist; the conventional locations (config directory,
// then working directory) are optional. An empty result with a nil error
// means no file was found and defaults apply.
func locateConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		path := string(fspath.Clean(opts.ConfigFilePath))
		if !fileExists(path) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", path)).
				BuildError()
		}
		return path, nil
	}

	cfgDir, err := configDirWithOverride(string(opts.ConfigDirPath))
	if err != nil {
		return "", err
	}
	for _, candidate := range []string{FilePath(cfgDir), ConfigFileName + "." + ConfigFileExt} {
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// describeLoadFailure wraps a config file read or schema failure with the
// guidance shown by chatty diagnostics.
func describeLoadFailure(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check the file against 'rund explain config'").
		WithSuggestion("Run 'rund config show' to see the effective values").
		Wrap(err).
		BuildError()
}

// loadCUEIntoViper checks a CUE config file against the #Config schema
// and merges its contents into Viper. The file decodes to a plain map
// rather than Config so Viper can layer it between defaults and
// environment overrides.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	schema, err := cueutil.CompileSchema(configSchema, "#Config")
	if err != nil {
		return err
	}

	// Optional fields stay absent in a valid config file, so the check
	// does not require concreteness.
	doc, err := schema.Check(data, cueutil.WithConcrete(false), cueutil.WithFilename(path))
	if err != nil {
		return err
	}

	var configMap map[string]any
	if err := doc.Decode(&configMap); err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists reports whether path names an existing non-directory file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// preparedConfigPath resolves the conventional config file path and makes
// sure its directory exists.
func preparedConfigPath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return FilePath(cfgDir), nil
}

// EnsureConfigDir creates the config directory if it does not exist yet.
func EnsureConfigDir() error {
	_, err := preparedConfigPath()
	return err
}

// CreateDefaultConfig writes a default config file unless one already
// exists. An existing file is never touched.
func CreateDefaultConfig() error {
	cfgPath, err := preparedConfigPath()
	if err != nil {
		return err
	}
	if fileExists(cfgPath) {
		return nil
	}
	return writeConfig(cfgPath, GenerateCUE(DefaultConfig()))
}

// Save writes cfg to the conventional config file path.
func Save(cfg *Config) error {
	cfgPath, err := preparedConfigPath()
	if err != nil {
		return err
	}
	return writeConfig(cfgPath, GenerateCUE(cfg))
}

// writeConfig validates rendered CUE against the schema and writes it to
// cfgPath. Nothing reaches disk when validation fails, so a bad value can
// never leave behind an unloadable config file.
func writeConfig(cfgPath, cueContent string) error {
	schema, err := cueutil.CompileSchema(configSchema, "#Config")
	if err != nil {
		return err
	}
	if _, err := schema.Check([]byte(cueContent), cueutil.WithConcrete(false), cueutil.WithFilename(cfgPath)); err != nil {
		return fmt.Errorf("refusing to write invalid config: %w", err)
	}

	if err := os.WriteFile(cfgPath, []byte(cueContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateCUE renders cfg as the CUE document the launcher writes to disk.
// Optional values render only when set, so a default file stays minimal.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// rund configuration file\n")
	sb.WriteString("// Run 'rund explain config' for documentation.\n\n")
	fmt.Fprintf(&sb, "compiler: %q\n", cfg.Compiler)

	if len(cfg.Exclusions) > 0 {
		sb.WriteString("\nexclusions: [\n")
		for _, pattern := range cfg.Exclusions {
			fmt.Fprintf(&sb, "\t%q,\n", pattern)
		}
		sb.WriteString("]\n")
	}

	fmt.Fprintf(&sb, "\nchatty: %v\n", cfg.Chatty)
	if cfg.TempDir != "" {
		fmt.Fprintf(&sb, "tmpdir: %q\n", cfg.TempDir)
	}

	return sb.String()
}
