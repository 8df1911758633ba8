// Package server provides the HTTP server shared by the verkey API.
//
// # Architecture
//
// The server wraps net/http with:
//
//   - Rate limiting using a token bucket (golang.org/x/time/rate)
//   - Request ID tracking via X-Request-Id
//   - API version negotiation via Accept: application/vnd.nvidia.verkey.v1+json
//   - Panic recovery
//   - Prometheus RED metrics, exposed at /metrics
//   - Health (/health) and readiness (/ready) probes
//   - Graceful shutdown on context cancellation, SIGINT or SIGTERM
//
// # Usage
//
//	s := server.New(
//	    server.WithName("verkeyd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/key": handleKey,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// A default handler lists the available routes at "/" unless one is provided.
//
// # Configuration
//
// NewConfig starts from pkg/defaults and applies these environment variables:
//
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown budget (default 30)
//   - RATE_LIMIT: requests per second (default 100)
//   - RATE_LIMIT_BURST: token bucket size (default 200)
//   - MAX_BULK_REQUESTS: versions per bulk request (default 100)
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. The latter
// maps pkg/errors codes to HTTP status: INVALID_REQUEST, USAGE and
// OUT_OF_RANGE to 400, NOT_FOUND to 404, RATE_LIMIT_EXCEEDED to 429,
// SERVICE_UNAVAILABLE to 503, TIMEOUT to 504 and anything else to 500.
package server
