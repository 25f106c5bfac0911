package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/habitpet/habitpet/backend"
	"github.com/habitpet/habitpet/backend/handlers"
	"github.com/habitpet/habitpet/internal/config"
	"github.com/habitpet/habitpet/internal/domain/leaderboard"
	"github.com/habitpet/habitpet/internal/logger"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the leaderboard refresher",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := buildServices(ctx, cfg)
		if err != nil {
			return err
		}
		defer svc.close()

		interval := cfg.Leaderboard.RefreshInterval.Duration
		if interval <= 0 {
			interval = cfg.Leaderboard.TTL.Duration
		}
		leaderboard.NewRefresher(svc.leaderboard, cfg.Leaderboard.WarmLimits, interval).Start(ctx)

		app := backend.NewApp(&handlers.WebApp{
			Rewards:   svc.rewards,
			Lifecycle: svc.lifecycle,
			Rankings:  svc.leaderboard,
			DB:        svc.db,
			Version:   version,
		}, cfg.Web)

		address := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
		errCh := make(chan error, 1)
		go func() {
			logger.LogSystem("Starting HTTP server", slog.String("address", address), slog.String("version", version))
			errCh <- app.Listen(address)
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		case <-ctx.Done():
		}

		logger.LogSystem("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
