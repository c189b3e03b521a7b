// Package server implements the HTTP API exposing mesh generation as a
// service, for workflow stages that fetch sampling meshes over the
// network instead of shelling out to the CLI.
//
// # Endpoints
//
//	GET /v1/mesh?n1=4&n2=4&n3=1&weights=true          native point list
//	GET /v1/mesh?preset=production&format=json        materialized grid
//	GET /v1/presets                                   built-in presets
//	GET /health, GET /ready                           probes
//	GET /metrics                                      Prometheus metrics
//
// The native format on /v1/mesh streams the exact byte contract the
// plane-wave solver consumes, so a workflow can pipe the response body
// straight into an input deck.
//
// # Middleware
//
// API endpoints run behind a middleware chain providing Prometheus RED
// metrics, API version negotiation, request IDs, panic recovery, token
// bucket rate limiting (golang.org/x/time/rate), and request logging.
//
// # Configuration
//
// Config comes from NewConfig with environment overrides:
//
//	PORT                      listen port (default 8080)
//	LOG_LEVEL                 logging verbosity
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget
package server
