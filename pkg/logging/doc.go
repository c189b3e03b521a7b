// Package logging provides structured logging utilities for kmesh components.
//
// It wraps the standard library slog package with toolkit-wide defaults:
// JSON output to stderr, module/version context on every record,
// LOG_LEVEL environment configuration, and source location tracking for
// debug logs.
//
// Typical use:
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("kmesh", version)
//	    slog.Info("starting", "version", version)
//	}
//
// All output goes to stderr so that generated point lists on stdout stay
// machine-consumable.
package logging
