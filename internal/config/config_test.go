package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"paperforge/internal/config"
	"paperforge/internal/locale"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := config.Default()
	t.Setenv("PAPERFORGE_WORKSPACE", "")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Workspace.RecentsCap != 25 {
		t.Fatalf("default recents cap = %d", cfg.Workspace.RecentsCap)
	}
	if cfg.AutosaveInterval() != 3*time.Second {
		t.Fatalf("default autosave interval = %v", cfg.AutosaveInterval())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PAPERFORGE_WORKSPACE", t.TempDir())
	cfg, path, exists, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatalf("expected missing file, resolved %s", path)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.DefaultPaperLocale() != locale.English {
		t.Fatalf("default locale = %s", cfg.DefaultPaperLocale())
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PAPERFORGE_WORKSPACE", "")
	configPath := filepath.Join(dir, "config.toml")
	body := strings.Join([]string{
		"[workspace]",
		`dir = "` + filepath.Join(dir, "ws") + `"`,
		"recents_cap = 10",
		"autosave_seconds = 5",
		`default_locale = "BN"`,
		"[logging]",
		`format = "JSON"`,
		`level = "Debug"`,
	}, "\n")
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, path, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || path != configPath {
		t.Fatalf("resolved (%s, %v)", path, exists)
	}
	if cfg.Workspace.RecentsCap != 10 || cfg.Workspace.AutosaveSeconds != 5 {
		t.Fatalf("unexpected workspace: %+v", cfg.Workspace)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("normalization failed: %+v", cfg.Logging)
	}
	if cfg.DefaultPaperLocale() != locale.Bengali {
		t.Fatalf("default locale = %s", cfg.DefaultPaperLocale())
	}
	if cfg.DatabasePath() != filepath.Join(cfg.Workspace.Dir, "papers.db") {
		t.Fatalf("database path = %s", cfg.DatabasePath())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"cap too large", func(c *config.Config) { c.Workspace.RecentsCap = 500 }},
		{"cap zero", func(c *config.Config) { c.Workspace.RecentsCap = 0 }},
		{"autosave negative", func(c *config.Config) { c.Workspace.AutosaveSeconds = -1 }},
		{"unknown locale", func(c *config.Config) { c.Workspace.DefaultLocale = "xx" }},
		{"bad format", func(c *config.Config) { c.Logging.Format = "yaml" }},
		{"bad level", func(c *config.Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	cfg := config.Default()
	cfg.Workspace.Dir = filepath.Join(t.TempDir(), "ws")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Workspace.Dir, cfg.LogDir()} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory %s missing: %v", dir, err)
		}
	}
}

func TestCreateSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[workspace]") {
		t.Fatal("sample missing workspace section")
	}
}
