package config

import (
	"fmt"

	"paperforge/internal/locale"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWorkspace(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateWorkspace() error {
	if c.Workspace.RecentsCap < 1 || c.Workspace.RecentsCap > 100 {
		return fmt.Errorf("workspace.recents_cap must be between 1 and 100, got %d", c.Workspace.RecentsCap)
	}
	if c.Workspace.AutosaveSeconds < 1 || c.Workspace.AutosaveSeconds > 300 {
		return fmt.Errorf("workspace.autosave_seconds must be between 1 and 300, got %d", c.Workspace.AutosaveSeconds)
	}
	if _, ok := locale.Parse(c.Workspace.DefaultLocale); !ok {
		return fmt.Errorf("workspace.default_locale: unknown locale %q", c.Workspace.DefaultLocale)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// DefaultPaperLocale resolves the configured default locale.
func (c *Config) DefaultPaperLocale() locale.Locale {
	if loc, ok := locale.Parse(c.Workspace.DefaultLocale); ok {
		return loc
	}
	return locale.English
}
