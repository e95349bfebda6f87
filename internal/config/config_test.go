// Copyright (c) 2025 ToeiRei
// Cronlens - cron schedule explorer
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cfg "github.com/toeirei/cronlens/internal/config"
)

// isolateConfigDir points the user config directory at a temp dir so tests
// never read or write the real configuration.
func isolateConfigDir(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("user config dir isolation uses XDG_CONFIG_HOME")
	}
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	return tmp
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfigDir(t)

	defaults := map[string]any{
		"language":        "en",
		"count":           5,
		"history.enabled": true,
		"history.dsn":     "./history.db",
	}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults, nil)
	// No config file exists anywhere in the isolated search path; the
	// not-found error comes back alongside the default-populated config.
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
	}
	if got.Language != "en" {
		t.Errorf("expected default language %q, got %q", "en", got.Language)
	}
	if got.Count != 5 {
		t.Errorf("expected default count 5, got %d", got.Count)
	}
	if !got.History.Enabled {
		t.Error("expected history enabled by default")
	}
}

func TestLoadConfigReadsExplicitFile(t *testing.T) {
	isolateConfigDir(t)

	tmp := t.TempDir()
	yaml := "language: de\ncount: 8\nhistory:\n  enabled: false\n  dsn: /tmp/h.db\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	defaults := map[string]any{"language": "en", "count": 5, "history.enabled": true}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults, &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" {
		t.Errorf("expected de, got %q", got.Language)
	}
	if got.Count != 8 {
		t.Errorf("expected count 8, got %d", got.Count)
	}
	if got.History.Enabled {
		t.Error("expected history disabled via file")
	}
	if got.History.Dsn != "/tmp/h.db" {
		t.Errorf("expected dsn from file, got %q", got.History.Dsn)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	isolateConfigDir(t)
	t.Setenv("CRONLENS_LANGUAGE", "de")
	t.Setenv("CRONLENS_HISTORY_DSN", "/tmp/env.db")

	defaults := map[string]any{"language": "en", "history.dsn": "./history.db"}
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, defaults, nil)
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			t.Fatalf("LoadConfig returned error: %v", err)
		}
	}
	if got.Language != "de" {
		t.Errorf("expected env override language %q, got %q", "de", got.Language)
	}
	if got.History.Dsn != "/tmp/env.db" {
		t.Errorf("expected env override dsn, got %q", got.History.Dsn)
	}
}

func TestWriteConfigFileCreatesFile(t *testing.T) {
	tmp := isolateConfigDir(t)

	c := cfg.Config{Language: "en", Count: 5}
	c.History.Enabled = true
	c.History.Dsn = "./history.db"

	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}

	path := filepath.Join(tmp, "cronlens", "cronlens.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s, read error: %v", path, err)
	}
	if !strings.Contains(string(data), "language: en") {
		t.Errorf("expected marshaled language field, got:\n%s", data)
	}
}

func TestDefaultHistoryDsn(t *testing.T) {
	tmp := isolateConfigDir(t)

	got := cfg.DefaultHistoryDsn()
	want := filepath.Join(tmp, "cronlens", "history.db")
	if got != want {
		t.Errorf("DefaultHistoryDsn() = %q, want %q", got, want)
	}
}
