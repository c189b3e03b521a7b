/*
Copyright © 2026 kmesh authors
SPDX-License-Identifier: Apache-2.0
*/
package defaults

import "time"

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Large meshes stream many lines, so this is generous.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// MeshHandlerTimeout is the timeout for mesh generation requests.
	MeshHandlerTimeout = 30 * time.Second
)

// Limits on request-driven mesh generation.
const (
	// MaxMaterializedPoints caps the number of points materialized in
	// memory for structured formats (json/yaml/table). The native
	// format streams and has no such cap.
	MaxMaterializedPoints = 1 << 20
)
