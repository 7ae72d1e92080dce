// Package server provides an HTTP server for authkit applications using
// Gin with HTTP/2 cleartext (h2c) support.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: Panic recovery with structured logging
//   - Logging: Request/response logging with duration tracking
//   - CORS: Cross-origin resource sharing configuration
//   - RequestID: Request ID generation and propagation
//   - RateLimit: Sliding-window rate limiting
//   - BodySize: Request body size limits
//   - Auth: Bearer-token authentication backed by the auth engine
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: Health check aggregation
//   - /alive: Kubernetes liveness probe
//   - /ready: Kubernetes readiness probe
//   - /version: Build version information
//   - /metrics: Runtime memory and goroutine metrics
package server
