package server

import "time"

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// Request limits and timeouts
const (
	MaxRequestBodyBytes = 1 << 10
	ReadHeaderTimeout   = 5 * time.Second
)

// Paths that are not logged per request
var quietPaths = []string{
	"/healthz",
	"/metrics",
}
