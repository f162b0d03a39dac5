package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"studentpulse/internal/app"
	"studentpulse/internal/config"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		application.Logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
