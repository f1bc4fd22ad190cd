package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kanban/internal/config"
	"kanban/internal/util"
)

var (
	configPath string
	logLevel   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kanban",
		Short: "In-memory Kanban board service",
		Long: `kanban keeps a board of columns and tasks in memory and serves it over a JSON API.

Boards are seeded from a YAML file or a SQLite fixture at startup. Changes made
while the service runs are not written back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", util.EnvOrDefault("KANBAN_CONFIG", ""), "Path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newFixtureCmd())
	root.AddCommand(newExportCmd())
	return root
}

func execute(version string) error {
	root := newRootCmd()
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig resolves the configuration shared by every command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
