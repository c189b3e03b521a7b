// Package cli implements the command-line interface for the kmesh tool.
//
// # Overview
//
// The kmesh CLI generates uniform k-point sampling meshes over the unit
// cell in fractional coordinates, for use as solver input decks. It also
// lists mesh presets, renders mesh plots, and runs the HTTP API server.
//
// # Commands
//
// generate - Produce a sampling mesh:
//
//	kmesh generate --n1 6 --n2 6 --n3 1 [--weights] [--output FILE] [--format mesh|json|yaml|table]
//
// Axis counts come from explicit flags, a named preset (--preset), or
// interactive prompts (--interactive). The native mesh format streams a
// count line followed by fixed-width point lines; structured formats
// carry the materialized grid.
//
// presets - List available mesh presets:
//
//	kmesh presets [--preset-file FILE] [--format yaml|json|table]
//
// plot - Render the in-plane mesh projection:
//
//	kmesh plot --preset production --output mesh.png
//
// serve - Run the mesh HTTP API server:
//
//	kmesh serve [--port 8080]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// Logs are structured JSON on stderr; stdout carries only mesh output,
// so generate can be piped or redirected safely. File output via
// --output is committed atomically so a partial mesh never replaces an
// existing file.
//
// # Environment Variables
//
//	LOG_LEVEL          Set logging verbosity (debug, info, warn, error)
//	KMESH_PRESET_FILE  Default path for additional mesh presets
//	PORT               Default port for the serve command
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/elphtools/kmesh/pkg/cli.version=1.0.0'"
package cli
