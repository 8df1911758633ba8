// Package api provides the HTTP API layer for the verkey service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with the key and index handlers.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/key?version=&segments=&strict= - Encode one version
//   - POST /v1/keys - Encode up to MAX_BULK_REQUESTS versions
//   - POST /v1/index - Store a version in the index
//   - GET /v1/index?min=&max=&limit= - List indexed versions in key order
//   - DELETE /v1/index?version= - Remove a version from the index
//   - GET /v1/index/export - Every indexed version as a KeySet document
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Example
//
//	curl "http://localhost:8080/v1/key?version=1.2.3&segments=3"
//
//	{"version":"1.2.3","segments":3,"key":"AAAAAAAAAAAAAAAAAAABIEEGHEEAICCJJEIGCBB"}
//
// Errors use the server.ErrorResponse body; range violations are 400 with
// code OUT_OF_RANGE and malformed segments under strict=true are 400 with
// code INVALID_REQUEST. POST bodies sent with a Content-Type other than
// application/json (or a +json type) are rejected with 415.
//
// # Configuration
//
// Server settings come from pkg/server (PORT, RATE_LIMIT, ...). The index
// backend comes from pkg/index (VERKEY_INDEX, VERKEY_SEGMENTS, REDIS_ADDR).
package api
