package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/avidalm/authgate/internal/client/cli"
	"github.com/avidalm/authgate/internal/client/config"
	"github.com/avidalm/authgate/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewDefault(os.Stderr, slog.LevelInfo)

	ctx := context.Background()

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}
