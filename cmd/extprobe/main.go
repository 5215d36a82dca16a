package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jgivc/extprobe/internal/app"
	"github.com/jgivc/extprobe/internal/config"
)

func main() {
	cfgFileName := flag.String("c", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgFileName)
	if err != nil {
		slog.Error("Cannot load config", slog.String("path", *cfgFileName), slog.Any("error", err))
		os.Exit(1)
	}

	// Run logs its own failure.
	if err := app.New(cfg).Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
