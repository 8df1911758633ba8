// Package errors provides structured error types used by the encoder and its
// adapters (CLI, HTTP API, host-call bridge) to classify failures.
//
// Usage errors (wrong argument count or types) and range errors (version
// length or segment count out of bounds) carry dedicated codes so each
// adapter can translate them to its own transport: an exit status, an HTTP
// status or a host error flag.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeOutOfRange,
//	    "segment count out of range",
//	    version.ErrSegmentCount,
//	    map[string]any{
//	        "segments": 5,
//	    },
//	)
//
//	if errors.IsCode(err, errors.ErrCodeOutOfRange) {
//	    // reject input
//	}
package errors
