package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeWorkspace(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeWorkspace() error {
	if value, ok := os.LookupEnv("PAPERFORGE_WORKSPACE"); ok && strings.TrimSpace(value) != "" {
		c.Workspace.Dir = value
	}
	if strings.TrimSpace(c.Workspace.Dir) == "" {
		c.Workspace.Dir = defaultWorkspaceDir
	}
	var err error
	if c.Workspace.Dir, err = expandPath(c.Workspace.Dir); err != nil {
		return fmt.Errorf("workspace.dir: %w", err)
	}
	if c.Workspace.RecentsCap == 0 {
		c.Workspace.RecentsCap = defaultRecentsCap
	}
	if c.Workspace.AutosaveSeconds == 0 {
		c.Workspace.AutosaveSeconds = defaultAutosaveSeconds
	}
	c.Workspace.DefaultLocale = strings.ToLower(strings.TrimSpace(c.Workspace.DefaultLocale))
	if c.Workspace.DefaultLocale == "" {
		c.Workspace.DefaultLocale = defaultLocale
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
