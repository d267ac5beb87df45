// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"rund/internal/config"
	"rund/internal/testutil"
)

// isolateConfigDir points configuration at a fresh directory and moves the
// working directory away from any local rund.cue. Returns the config dir.
func isolateConfigDir(t *testing.T) string {
	t.Helper()

	for _, key := range []string{"RUND_CONFIG", "RUND_COMPILER", "RUND_EXCLUSIONS", "RUND_CHATTY", "RUND_TMPDIR"} {
		restore := testutil.MustUnsetenv(t, key)
		t.Cleanup(restore)
	}

	cfgDir := t.TempDir()
	config.SetConfigDirOverride(cfgDir)
	t.Cleanup(config.Reset)

	restore := testutil.MustChdir(t, t.TempDir())
	t.Cleanup(restore)
	return cfgDir
}

func configCmdForTest(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	cmd := &cobra.Command{Use: "config"}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestInitConfigFile(t *testing.T) {
	// Not parallel: mutates the config dir override and working directory.
	cfgDir := isolateConfigDir(t)
	cmd, out := configCmdForTest(t)

	if err := initConfigFile(cmd); err != nil {
		t.Fatalf("initConfigFile() error = %v", err)
	}
	if !strings.Contains(out.String(), "Created default configuration") {
		t.Errorf("output = %q, want creation confirmation", out.String())
	}

	cfgPath := filepath.Join(cfgDir, "rund.cue")
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(string(data), `compiler: "dmd"`) {
		t.Errorf("config file missing default compiler:\n%s", data)
	}

	// A second init must warn instead of overwriting.
	out.Reset()
	if err := initConfigFile(cmd); err != nil {
		t.Fatalf("second initConfigFile() error = %v", err)
	}
	if !strings.Contains(out.String(), "already exists") {
		t.Errorf("output = %q, want already-exists warning", out.String())
	}
}

func TestShowConfigPath(t *testing.T) {
	cfgDir := isolateConfigDir(t)
	cmd, out := configCmdForTest(t)

	if err := showConfigPath(cmd); err != nil {
		t.Fatalf("showConfigPath() error = %v", err)
	}
	if !strings.Contains(out.String(), cfgDir) {
		t.Errorf("output missing config dir %q:\n%s", cfgDir, out.String())
	}
	if !strings.Contains(out.String(), "rund.cue") {
		t.Errorf("output missing config file name:\n%s", out.String())
	}
}

func TestShowConfig_Defaults(t *testing.T) {
	isolateConfigDir(t)
	cmd, out := configCmdForTest(t)

	if err := showConfig(cmd); err != nil {
		t.Fatalf("showConfig() error = %v", err)
	}

	for _, want := range []string{"Current Configuration", "(using defaults)", "dmd", "std"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestSetConfigValue(t *testing.T) {
	isolateConfigDir(t)
	cmd, out := configCmdForTest(t)

	if err := setConfigValue(cmd, "compiler", "ldmd2"); err != nil {
		t.Fatalf("setConfigValue() error = %v", err)
	}
	if !strings.Contains(out.String(), "Set compiler = ldmd2") {
		t.Errorf("output = %q, want set confirmation", out.String())
	}

	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load() after set error = %v", err)
	}
	if cfg.Compiler != "ldmd2" {
		t.Errorf("Compiler = %q after set, want %q", cfg.Compiler, "ldmd2")
	}
}

func TestSetConfigValue_Exclusions(t *testing.T) {
	isolateConfigDir(t)
	cmd, _ := configCmdForTest(t)

	if err := setConfigValue(cmd, "exclusions", "foo, bar"); err != nil {
		t.Fatalf("setConfigValue() error = %v", err)
	}

	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{})
	if err != nil {
		t.Fatalf("Load() after set error = %v", err)
	}
	if len(cfg.Exclusions) != 2 || cfg.Exclusions[0] != "foo" || cfg.Exclusions[1] != "bar" {
		t.Errorf("Exclusions = %v after set, want [foo bar]", cfg.Exclusions)
	}
}

func TestSetConfigValue_UnknownKey(t *testing.T) {
	isolateConfigDir(t)
	cmd, _ := configCmdForTest(t)

	err := setConfigValue(cmd, "no_such_key", "x")
	if err == nil {
		t.Fatal("setConfigValue() with an unknown key should fail")
	}
	if !strings.Contains(err.Error(), "unknown configuration key") {
		t.Errorf("error = %q, want unknown-key message", err.Error())
	}
}

func TestSetConfigValue_InvalidValue(t *testing.T) {
	isolateConfigDir(t)
	cmd, _ := configCmdForTest(t)

	err := setConfigValue(cmd, "tmpdir", "   ")
	if err == nil {
		t.Fatal("setConfigValue() with a whitespace tmpdir should fail")
	}
	if !strings.Contains(err.Error(), "invalid value for tmpdir") {
		t.Errorf("error = %q, want invalid-value message", err.Error())
	}
}

func TestConfigDump(t *testing.T) {
	isolateConfigDir(t)

	var out bytes.Buffer
	dump, _, err := configCmd.Find([]string{"dump"})
	if err != nil {
		t.Fatalf("Find(dump) error = %v", err)
	}
	dump.SetOut(&out)
	dump.SetContext(context.Background())

	if err := dump.RunE(dump, nil); err != nil {
		t.Fatalf("dump error = %v", err)
	}
	for _, want := range []string{`compiler: "dmd"`, "chatty: false"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("dump output missing %q:\n%s", want, out.String())
		}
	}
}
