package config

const (
	defaultWorkspaceDir    = "~/.local/share/paperforge"
	defaultRecentsCap      = 25
	defaultAutosaveSeconds = 3
	defaultLocale          = "en"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Workspace: Workspace{
			Dir:             defaultWorkspaceDir,
			RecentsCap:      defaultRecentsCap,
			AutosaveSeconds: defaultAutosaveSeconds,
			DefaultLocale:   defaultLocale,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
