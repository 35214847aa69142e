// Package server exposes the shift engine over HTTP.
//
// Endpoints:
//
//	POST /v1/shift   shift a value, JSON in and out
//	GET  /version    build version
//	GET  /health     liveness probe
//	GET  /metrics    Prometheus metrics
//
// All endpoints are wrapped by SecurityMiddleware and the request metrics
// middleware. Start blocks until its context is canceled and then shuts the
// listener down gracefully.
package server
