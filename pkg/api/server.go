package api

import (
	"context"
	"log/slog"

	"github.com/elphtools/kmesh/pkg/logging"
	"github.com/elphtools/kmesh/pkg/server"
)

const (
	name           = "kmeshd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/elphtools/kmesh/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the mesh API server and blocks until shutdown.
// It configures logging and handles graceful shutdown on SIGINT/SIGTERM.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg := server.NewConfig()
	cfg.Name = name
	cfg.Version = version

	if err := server.Run(ctx, cfg); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
