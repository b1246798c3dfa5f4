package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/marketpulse-io/marketpulse/internal/config"
	"github.com/marketpulse-io/marketpulse/internal/logger"
	"github.com/marketpulse-io/marketpulse/internal/server"
	"github.com/marketpulse-io/marketpulse/internal/version"
	"github.com/marketpulse-io/marketpulse/pkg/marketdata"
)

// serveAction loads the configuration, wires the provider and runs the
// server until interrupted.
func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if listen := cmd.String("listen"); listen != "" {
		cfg.Server.ListenAddr = listen
	}

	log, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	provider, err := marketdata.NewProvider(cfg.Provider.Type, cfg.Provider.Config)
	if err != nil {
		return fmt.Errorf("failed to create market data provider: %w", err)
	}

	srv, err := server.NewServer(cfg, provider, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(""); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	log.Info("marketpulse started",
		zap.String("version", version.GetVersion()),
		zap.String("address", srv.Address()),
		zap.String("provider", provider.Name()),
	)

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()

	log.Info("shutting down")

	return srv.Stop()
}

func main() {
	cmd := &cli.Command{
		Name:    "marketpulse",
		Usage:   "Market dashboard server: indicators, option chains and live charts",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
				Value:   "config/marketpulse.yaml",
			},
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Listen address, overrides the config value (e.g. :8080)",
			},
		},
		Action: serveAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
