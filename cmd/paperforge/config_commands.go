package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"paperforge/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the paperforge configuration file",
		Annotations: map[string]string{
			"skipConfigLoad": "true",
		},
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigValidateCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := outputPath
			if path == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				path = defaultPath
			}
			if err := config.CreateSample(path); err != nil {
				return fmt.Errorf("write sample config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Destination path (defaults to the standard config location)")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse and validate a configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, resolved, existed, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("validate config: %w", err)
			}
			out := cmd.OutOrStdout()
			if existed {
				fmt.Fprintf(out, "Configuration at %s is valid\n", resolved)
			} else {
				fmt.Fprintln(out, "No configuration file found; defaults are in effect")
			}
			fmt.Fprintf(out, "  Workspace:     %s\n", cfg.Workspace.Dir)
			fmt.Fprintf(out, "  Recents cap:   %d\n", cfg.Workspace.RecentsCap)
			fmt.Fprintf(out, "  Autosave:      %s\n", cfg.AutosaveInterval())
			fmt.Fprintf(out, "  Paper locale:  %s\n", cfg.Workspace.DefaultLocale)
			fmt.Fprintf(out, "  Log format:    %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Log level:     %s\n", cfg.Logging.Level)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "path", "", "Configuration file to validate (defaults to the standard location)")
	return cmd
}
