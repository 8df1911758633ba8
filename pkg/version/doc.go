// Package version encodes dotted version strings into fixed-width keys that
// sort lexicographically in version order.
//
// # Overview
//
// Index structures, partition keys and plain string columns can only compare
// text. Encode turns "1.22.3" into a 39-byte key over the alphabet A..J such
// that comparing two keys as strings gives the same answer as comparing the
// versions component by component:
//
//	k1, _ := version.Encode("1.9", 2)  // AAAA...AECJEJGHDAF
//	k2, _ := version.Encode("1.10", 2) // AAAA...AECJEJGHDAG
//	k1 < k2                            // true
//
// # Pipeline
//
// Encoding is three pure steps:
//
//   - Normalize splits on "." and pads with "0" or truncates to the requested
//     segment count (1 to 4).
//   - Pack folds the segments into a Uint128, shifting 32 bits per segment,
//     most significant first.
//   - Symbolize renders the value in decimal, left-pads it to KeyWidth (39,
//     the digit count of 2^128-1) and maps 0..9 to A..J.
//
// # Lenient Segments
//
// Encode never fails on segment content. A segment that is not an unsigned
// decimal integer ("x", "", "-1", "1a") packs as zero, and a segment of 2^32
// or more spills into the neighbouring slot:
//
//	version.MustEncode("1.4294967296", 2) == version.MustEncode("1.0", 2) // true
//
// Keys already stored elsewhere depend on this exact behaviour. Callers that
// need strict input use Validate or EncodeStrict, which reject such segments
// with ErrNonNumeric, ErrNegativeComponent or ErrSegmentOverflow.
//
// # Error Handling
//
// Bounds violations are returned as *errors.StructuredError with code
// OUT_OF_RANGE and wrap one of:
//
//   - ErrVersionLength: version is empty or longer than 44 bytes
//   - ErrSegmentCount: segment count outside 1..4
//
// # Inspecting Keys
//
// Decode reverses Symbolize and Unpack splits the packed value back into its
// 32-bit slots:
//
//	v, _ := version.Decode(key)
//	fmt.Println(version.FormatSegments(version.Unpack(v, 3))) // 1.2.3
//
// All functions are safe for concurrent use.
package version
