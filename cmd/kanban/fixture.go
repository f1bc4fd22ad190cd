package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"kanban/internal/seed"
)

func newFixtureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixture <seed> <out.db>",
		Short: "Write a board seed into a SQLite fixture",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := cfg.NewLogger(cmd.ErrOrStderr())

			b, err := seed.Load(cmd.Context(), args[0], logger)
			if err != nil {
				return err
			}
			if err := seed.WriteFixture(cmd.Context(), args[1], b, logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d columns and %d tasks to %s\n", len(b.Columns), len(b.Tasks), args[1])
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <seed>",
		Short: "Print a board seed as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			b, err := seed.Load(cmd.Context(), args[0], cfg.NewLogger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			data, err := seed.Encode(b)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
