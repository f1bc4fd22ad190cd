package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"kanban/internal/board"
	"kanban/internal/seed"
	"kanban/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr, seedPath, staticDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seedPath
			}
			if cmd.Flags().Changed("static") {
				cfg.StaticDir = staticDir
			}

			logger := cfg.NewLogger(os.Stdout)
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			initial, err := seed.Load(ctx, cfg.Seed, logger)
			if err != nil {
				logger.Error("unable to load board seed", slog.String("error", err.Error()))
				return err
			}
			store, err := board.New(initial, logger)
			if err != nil {
				return err
			}

			srv := server.New(store, logger, cfg.StaticDir)
			httpServer := &http.Server{
				Addr:    cfg.Addr,
				Handler: srv.Engine(),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("starting server", slog.String("addr", httpServer.Addr))
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					logger.Error("server stopped unexpectedly", slog.String("error", err.Error()))
					return err
				}
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("failed to shutdown server", slog.String("error", err.Error()))
				return err
			}

			logger.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address")
	cmd.Flags().StringVar(&seedPath, "seed", "", "Board seed (.yaml or .db); empty starts the default board")
	cmd.Flags().StringVar(&staticDir, "static", "", "Directory with the built frontend")
	return cmd
}
