package testsupport

import (
	"path/filepath"
	"testing"

	"paperforge/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp workspace per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Workspace.Dir = filepath.Join(t.TempDir(), "workspace")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithRecentsCap overrides the recency index cap on the test config.
func WithRecentsCap(cap int) ConfigOption {
	return func(c *config.Config) {
		c.Workspace.RecentsCap = cap
	}
}

// WithAutosaveSeconds overrides the debounce window on the test config.
func WithAutosaveSeconds(seconds int) ConfigOption {
	return func(c *config.Config) {
		c.Workspace.AutosaveSeconds = seconds
	}
}
