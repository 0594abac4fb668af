package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"stock-watchlist-go/internal/config"
	"stock-watchlist-go/internal/logger"
	"stock-watchlist-go/internal/quote"
	"stock-watchlist-go/internal/tracker"
)

// Process exit codes.
const (
	exitOK        = 0
	exitFatal     = 1 // config, input or output failure
	exitAllFailed = 2 // no symbol could be priced
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("stonks", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	configDir := flags.StringP("config", "c", "./configs", "directory containing config.yml")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: stonks [--config dir] [watchlist.csv]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return exitFatal
	}

	// Load application configuration
	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		fmt.Fprintf(stderr, "could not load config: %v\n", err)
		return exitFatal
	}
	if flags.NArg() > 0 {
		cfg.Input.Path = flags.Arg(0)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(stderr, "could not initialize logger: %v\n", err)
		return exitFatal
	}
	defer log.Sync()
	log.Info("Configuration loaded", zap.String("input", cfg.Input.Path), zap.String("output", cfg.Output.Path))

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigchan)
	go func() {
		select {
		case <-sigchan:
			log.Info("Shutdown signal received, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	fetcher := quote.NewClient(&cfg.Quote, log)
	engine := tracker.NewEngine(log, &cfg, fetcher, stdout)

	summary, err := engine.Run(ctx)
	if err != nil {
		log.Error("Run failed", zap.Error(err))
		return exitFatal
	}
	if summary.AllFailed() {
		log.Error("No symbol could be priced", zap.Int("positions", summary.Positions))
		return exitAllFailed
	}
	return exitOK
}
