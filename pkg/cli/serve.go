/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/elphtools/kmesh/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the mesh generation HTTP API server",
		Description: `Run an HTTP server exposing mesh generation over a JSON API:

  GET /v1/mesh?n1=6&n2=6&n3=1&weights=true
  GET /v1/mesh?preset=production&format=json
  GET /v1/presets

Plus the usual operational endpoints: /health, /ready, and /metrics
(Prometheus). The server shuts down gracefully on SIGINT/SIGTERM.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "Port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "Address to bind to (default: all interfaces)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version

			if addr := cmd.String("address"); addr != "" {
				cfg.Address = addr
			}
			if portStr := cmd.String("port"); portStr != "" {
				port, err := strconv.Atoi(portStr)
				if err != nil || port < 1 || port > 65535 {
					return fmt.Errorf("invalid port: %q", portStr)
				}
				cfg.Port = port
			}

			return server.Run(ctx, cfg)
		},
	}
}
