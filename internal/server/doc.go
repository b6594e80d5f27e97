// Package server runs the HTTP transport: startup, OS signal handling and
// graceful shutdown.
package server
