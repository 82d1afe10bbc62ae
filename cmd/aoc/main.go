// Command aoc runs the puzzle engines on input files.
//
//	aoc path  maze.txt --turn-cost 1000 --all-paths
//	aoc spin  platform.txt --cycles 1000000000
//	aoc route edges.txt --from London --to Belfast
//	aoc --telemetry stdout spin platform.txt
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/joellidin/aoc/cmd/aoc/config"
)

var (
	cfgPath   string
	logLevel  string
	telemetry string

	cfg      config.Config
	logger   *slog.Logger
	shutdown = func(context.Context) error { return nil }
)

var rootCmd = &cobra.Command{
	Use:           "aoc",
	Short:         "Run shortest-path and cycle-compression engines on puzzle inputs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Read(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("telemetry") {
			cfg.Telemetry = telemetry
		}
		if err = cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		runID := uuid.NewString()[:8]
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})).
			With(slog.String("run_id", runID))
		logger.Debug("configuration loaded",
			slog.String("path", cfgPath),
			slog.String("level", cfg.LogLevel),
			slog.String("telemetry", cfg.Telemetry),
		)

		shutdown, err = initTelemetry(cfg.Telemetry, cmd.ErrOrStderr(), runID)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		if err := shutdown(context.Background()); err != nil {
			return fmt.Errorf("flush telemetry: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "aoc.yaml", "configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&telemetry, "telemetry", "none", "span and metric exporter: none or stdout")
	rootCmd.AddCommand(pathCmd, spinCmd, routeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "aoc:", err)
		os.Exit(1)
	}
}
