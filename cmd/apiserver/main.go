// API server entry point for TrueClause.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Gopesh111/TrueClause/internal/app"
	"github.com/Gopesh111/TrueClause/internal/config"
	"github.com/Gopesh111/TrueClause/internal/infrastructure/monitoring/logging"
)

var version = "dev"

func main() {
	configPath := flag.String("config", os.Getenv("TRUECLAUSE_CONFIG"), "path to configuration file (empty: environment only)")
	httpPort := flag.Int("http-port", 0, "HTTP server port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *httpPort > 0 {
		cfg.Server.Port = *httpPort
	}

	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger, version)
	if err != nil {
		logger.Fatal("failed to initialise application", logging.Err(err))
	}
	defer a.Close()

	a.Warm()
	if err := a.WatchLogLevel(*configPath); err != nil {
		logger.Warn("config watch disabled", logging.Err(err))
	}
	if err := a.Run(ctx); err != nil {
		logger.Error("server error", logging.Err(err))
		a.Close()
		os.Exit(1)
	}
	logger.Info("server stopped")
}

//Personal.AI order the ending
