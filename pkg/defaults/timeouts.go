// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// KeyHandlerTimeout is the timeout for single and bulk key requests.
	KeyHandlerTimeout = 10 * time.Second

	// IndexHandlerTimeout is the timeout for index requests.
	// Must exceed IndexOperationTimeout to allow error handling.
	IndexHandlerTimeout = 15 * time.Second
)

// Cache TTLs for HTTP responses.
const (
	// KeyCacheTTL is the Cache-Control max-age for key responses.
	// Keys depend only on their inputs.
	KeyCacheTTL = 24 * time.Hour
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Server request limits.
const (
	// ServerRateLimit is the default token bucket refill rate (requests/sec).
	ServerRateLimit = 100

	// ServerRateLimitBurst is the default token bucket size.
	ServerRateLimitBurst = 200

	// ServerMaxBulkRequests caps the number of versions in one bulk request.
	ServerMaxBulkRequests = 100

	// ServerMaxBodyBytes caps request body size.
	ServerMaxBodyBytes = 1 << 20
)

// Index timeouts for key index backends.
const (
	// IndexOperationTimeout bounds a single index call.
	IndexOperationTimeout = 5 * time.Second

	// IndexDialTimeout is the timeout for establishing a Redis connection.
	IndexDialTimeout = 3 * time.Second

	// IndexReadTimeout is the Redis socket read timeout.
	IndexReadTimeout = 3 * time.Second

	// IndexWriteTimeout is the Redis socket write timeout.
	IndexWriteTimeout = 3 * time.Second

	// IndexRangeLimit is the default page size for range queries.
	IndexRangeLimit = 100
)

// CLI timeouts for command-line operations.
const (
	// CLIIndexTimeout is the overall timeout for index subcommands.
	CLIIndexTimeout = 30 * time.Second
)
