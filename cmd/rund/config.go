// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rund/internal/config"
	"rund/internal/issue"
	"rund/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rund configuration",
	Long: `Manage rund configuration.

Configuration is stored in:
  - Linux: ~/.config/rund/rund.cue
  - macOS: ~/Library/Application Support/rund/rund.cue
  - Windows: %APPDATA%\rund\rund.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cmd, args[0], args[1])
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output raw configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{})
			if err != nil {
				return configError(err, false)
			}

			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(cfg))
			return nil
		},
	})
}

func showConfig(cmd *cobra.Command) error {
	cfg, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{})
	if err != nil {
		rendered, _ := issue.Get(issue.ConfigLoadFailedId).Render("dark")
		fmt.Fprint(cmd.ErrOrStderr(), rendered)
		return err
	}

	out := cmd.OutOrStdout()
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	// The provider does not cache resolved paths; derive the display path
	// from the standard config directory the same way every load does.
	if cfgDir, dirErr := config.ConfigDir(); dirErr == nil {
		cfgPath := config.FilePath(cfgDir)
		if fileExistsCheck(cfgPath) {
			fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
		} else {
			fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("compiler"), valueStyle.Render(string(cfg.Compiler)))
	fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("chatty"), valueStyle.Render(strconv.FormatBool(cfg.Chatty)))

	if cfg.TempDir != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("tmpdir"), valueStyle.Render(cfg.TempDir.String()))
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("tmpdir"), SubtitleStyle.Render("(derived per-user staging dir)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("exclusions"))
	if len(cfg.Exclusions) == 0 {
		fmt.Fprintf(out, "  %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		for _, pattern := range cfg.Exclusions {
			fmt.Fprintf(out, "  - %s\n", valueStyle.Render(string(pattern)))
		}
	}

	return nil
}

func initConfigFile(cmd *cobra.Command) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	cfgPath := config.FilePath(cfgDir)
	if fileExistsCheck(cfgPath) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration already exists at %s\n", WarningStyle.Render("!"), cfgPath)
		return nil
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

func showConfigPath(cmd *cobra.Command) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(out, "Config file: %s\n", config.FilePath(cfgDir))
	return nil
}

func setConfigValue(cmd *cobra.Command, key, value string) error {
	cfg, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{})
	if err != nil {
		return configError(err, false)
	}

	switch key {
	case "compiler":
		cfg.Compiler = types.CompilerName(value)

	case "chatty":
		cfg.Chatty = value == "true" || value == "1"

	case "tmpdir":
		cfg.TempDir = config.TempDirPath(value)

	case "exclusions":
		var patterns []types.PackagePattern
		for _, entry := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(entry); trimmed != "" {
				patterns = append(patterns, types.PackagePattern(trimmed))
			}
		}
		cfg.Exclusions = patterns

	default:
		return fmt.Errorf("unknown configuration key: %s\nValid keys: compiler, chatty, tmpdir, exclusions", key)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %s\n", SuccessStyle.Render("✓"), key, value)
	return nil
}

// fileExistsCheck reports whether path names an existing non-directory file.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
