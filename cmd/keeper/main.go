package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/app"
	"github.com/hostkeeper/keeper/keeper/auth"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/pkg/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configName string
	configDir  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "keeper",
		Short:         "Watch and tidy up the local machine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().StringVar(&opts.configName, "config", "keeper_config", "config file name (toml)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory searched before the built-in config directory")

	cmd.AddCommand(
		newServeCmd(opts),
		newWatchCmd(opts),
		newCheckCmd(opts),
		newTokenCmd(opts),
	)
	return cmd
}

func loadConfig(opts *rootOptions) (config.KeeperConfig, error) {
	loader, err := config.InitKeeperConfig(opts.configName, opts.configDir)
	if err != nil {
		return config.KeeperConfig{}, errors.Wrap(err, "load config")
	}
	return loader.Config(), nil
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the pollers and the local control API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger.InitLogger(cfg.Logging.Level, cfg.Logging.Console)

			restApp, err := app.NewRestApp(opts.configName, opts.configDir)
			if err != nil {
				return err
			}
			restApp.Run()
			return nil
		},
	}
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the pollers behind a terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			var out io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return errors.Wrap(err, "open log file")
				}
				defer f.Close()
				out = f
			}
			logger.InitLoggerTo(out, cfg.Logging.Level, cfg.Logging.Console)

			watchApp, err := app.NewWatchApp(opts.configName, opts.configDir)
			if err != nil {
				return err
			}
			watchApp.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file instead of discarding them")
	return cmd
}

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the health checks once and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger.InitLoggerTo(cmd.ErrOrStderr(), "warn", cfg.Logging.Console)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			snap, err := app.RunHealthCheck(ctx, opts.configName, opts.configDir)
			if err != nil {
				return err
			}
			failed := printHealth(cmd.OutOrStdout(), snap.Items)
			if failed > 0 {
				return fmt.Errorf("%d health checks failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall deadline for the check run")
	return cmd
}

func printHealth(w io.Writer, results []domain.HealthCheckResult) int {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tCATEGORY\tCHECK\tMESSAGE")
	failed := 0
	for _, r := range results {
		if r.Status == domain.HealthFail {
			failed++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Status, r.Category, r.Name, r.Message)
	}
	_ = tw.Flush()
	return failed
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var clientID string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the local control API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			token, claims, err := auth.NewIssuer(cfg.Server).Issue(clientID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", claims.ExpiresAt.Time.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&clientID, "client", "cli", "client id recorded in the token")
	return cmd
}
