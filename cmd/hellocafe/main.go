package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dzahariev/hellocafe/api"
	"github.com/dzahariev/hellocafe/cfg"
	"github.com/dzahariev/hellocafe/domain"
)

func main() {
	config, err := cfg.Load(context.Background())
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	server, err := api.NewServer(config.Server, config.Logger, domain.NewDefaultCatalog())
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	err = server.Run()
	if err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
