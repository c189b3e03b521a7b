// Package errors provides structured error types shared across the
// kmesh toolkit. Errors carry a machine-readable code (e.g.,
// INVALID_INPUT for malformed axis counts), a human-readable message,
// an optional cause for errors.Is/As chains, and optional key/value
// context for logging.
package errors
