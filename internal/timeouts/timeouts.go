// Package timeouts defines shared timeout constants used across the server,
// the CLI and the MCP tools.
package timeouts

import "time"

// Upstream caps a single request to the card database or the Bored API.
const Upstream = 10 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
