// Package api wires together the standalone kmeshd server binary:
// logging setup, configuration from the environment, and the HTTP
// server lifecycle. The actual routes and handlers live in pkg/server.
package api
