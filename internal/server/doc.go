// Package server wires the Echo HTTP server: the rendered landing page, the
// newsletter API, the slide feed WebSocket, and the observability endpoints.
package server
