// Package api adapts inbound HTTP requests to service calls and service
// results to outbound responses. It is the sole place where the internal
// error taxonomy is translated to HTTP status codes.
package api
