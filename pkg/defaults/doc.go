// Package defaults centralizes timeout and limit constants shared
// across kmesh components, so the server, CLI, and handlers agree on
// one set of values.
package defaults
