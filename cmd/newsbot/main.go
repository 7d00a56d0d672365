package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/reshetovitsme/news-digest-bot/internal/di"
	"github.com/reshetovitsme/news-digest-bot/internal/shared/config"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

type app struct {
	configPath string
	dryRun     bool
	cfg        *config.Config
	injector   do.Injector
}

func main() {
	a := &app{}

	root := &cobra.Command{
		Use:           "newsbot",
		Short:         "Fetch fresh news, summarize it and post the digest to X",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.injector == nil {
				return nil
			}
			return di.Shutdown(a.injector)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: first of config.{yaml,yml,json,toml})")
	root.PersistentFlags().BoolVar(&a.dryRun, "dry-run", false, "Never publish to X")

	root.AddCommand(
		runCmd(a),
		listenCmd(a),
		serveCmd(a),
		sourcesCmd(a),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return oops.With("context", "failed to load config").Wrap(err)
	}
	if a.dryRun {
		cfg.DryRun = true
	}
	a.cfg = cfg

	setupLogging(cfg.LogLevel)

	injector, err := di.Setup(cfg)
	if err != nil {
		return oops.With("context", "failed to setup dependency injection").Wrap(err)
	}
	a.injector = injector
	return nil
}

// setupLogging writes human readable logs to stdout and errors as JSON to stderr.
func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}

	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	logger := slog.New(slogmulti.Fanout(textHandler, jsonHandler))
	slog.SetDefault(logger)
}
