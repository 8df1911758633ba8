// Package cli implements the verkey command-line interface.
//
// # Overview
//
// verkey encodes dotted version strings into 39-character keys whose string
// order follows numeric version order. It wraps the encoder, the host-function
// bridge, image tag ordering and the version index behind one binary.
//
// # Commands
//
// encode - Encode versions into keys:
//
//	verkey encode [--segments N] [--strict] [--file FILE] [version...]
//
// Versions come from the arguments, --file (.txt, .json or .yaml list) or
// stdin, one per line. Text output prints one key per line in input order.
//
// call - Invoke the semver_value host function:
//
//	verkey call <semver> <segments>
//
// Arguments are coerced from text the way a query engine would pass them.
// A wrong argument count is a usage error.
//
// decode - Recover the numeric segments of keys:
//
//	verkey decode [--segments N] <key...>
//
// sort - Order versions by key:
//
//	verkey sort [--segments N] [--reverse] [version...]
//
// compare - Print -1, 0 or 1 for two versions:
//
//	verkey compare [--segments N] <a> <b>
//
// image - Order container image references by tag version:
//
//	verkey image [--segments N] [--reverse] <reference...>
//
// index - Store and query versions:
//
//	verkey index [--backend memory|redis] put <version...>
//	verkey index range [--min V] [--max V] [--limit N]
//	verkey index delete <version...>
//	verkey index len
//
// # Common Flags
//
//	--segments, -s  Segment count, 1 to 4 (default: 4)
//	--output, -o    Output file path (default: stdout)
//	--format, -t    Output format: text, json, yaml, table (default: text)
//	--log-level     Log level: debug, info, warn, error (default: info)
//
// # Environment Variables
//
//	LOG_LEVEL        Logging verbosity
//	VERKEY_SEGMENTS  Default for --segments
//	VERKEY_FORMAT    Default for --format
//	VERKEY_INDEX     Index backend (memory, redis)
//	REDIS_ADDR       Redis address for the redis backend
//
// # Exit Codes
//
//	0  Success
//	1  Execution failure (out of range input, index errors)
//	2  Usage error (wrong argument count or type)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/verkey/pkg/cli.version=1.0.0'"
package cli
