// Package cmd holds the habitpet command line.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/habitpet/habitpet/internal/config"
	"github.com/habitpet/habitpet/internal/logger"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "habitpet",
	Short:         "Habit tracker that grows a companion as you get things done",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(logger.New("HabitPet", cfg.Log.Format, cfg.Log.Level, cfg.Log.AddSource))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config")
}

// Execute runs the root command and exits non-zero on failure.
func Execute(v string) {
	version = v
	start := time.Now()

	cmd, err := rootCmd.ExecuteContextC(context.Background())
	name := rootCmd.Name()
	if cmd != nil {
		name = cmd.CommandPath()
	}
	logger.LogCommand(name, time.Since(start), err)
	if err != nil {
		os.Exit(1)
	}
}
