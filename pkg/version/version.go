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

package version

import (
	"errors"
	"fmt"
	"math"
	"strings"

	apperrors "github.com/NVIDIA/verkey/pkg/errors"
)

// Input bounds accepted by Encode.
const (
	// MinVersionLength is the shortest accepted version string, in bytes.
	MinVersionLength = 1
	// MaxVersionLength is the longest accepted version string, in bytes.
	MaxVersionLength = 44
	// MinSegments is the smallest accepted segment count.
	MinSegments = 1
	// MaxSegments is the largest accepted segment count. Four 32-bit slots
	// fill the 128-bit packed value.
	MaxSegments = 4
	// MaxSegmentValue is the largest segment value that keeps ordering exact.
	MaxSegmentValue = math.MaxUint32
)

// Error types for encoding and validation failures
var (
	ErrVersionLength     = errors.New("version length must be between 1 and 44 bytes")
	ErrSegmentCount      = errors.New("segment count must be between 1 and 4")
	ErrNonNumeric        = errors.New("version segment is not numeric")
	ErrNegativeComponent = errors.New("version segment cannot be negative")
	ErrSegmentOverflow   = errors.New("version segment exceeds 32 bits")
	ErrInvalidKey        = errors.New("key is not a valid encoded version")
)

// Encode converts a dotted version string into a KeyWidth-long key whose
// lexicographic order follows the numeric order of the first `segments`
// components.
//
// It returns an OUT_OF_RANGE error when version is empty or longer than
// MaxVersionLength bytes, or when segments is outside [MinSegments,
// MaxSegments]. Segments that are not numbers are encoded as zero; use
// EncodeStrict to reject them instead.
func Encode(version string, segments int) (string, error) {
	if err := checkBounds(version, segments); err != nil {
		return "", err
	}
	return Symbolize(Pack(Normalize(version, segments))), nil
}

// MustEncode is like Encode but panics on error.
// Only use this for hardcoded strings or in tests.
func MustEncode(version string, segments int) string {
	key, err := Encode(version, segments)
	if err != nil {
		panic(fmt.Sprintf("MustEncode: %v", err))
	}
	return key
}

// EncodeStrict validates version with Validate before encoding it.
func EncodeStrict(version string, segments int) (string, error) {
	if err := Validate(version, segments); err != nil {
		return "", err
	}
	return Encode(version, segments)
}

// Validate reports whether version encodes without any lossy coercion.
// In addition to the bounds Encode enforces, every normalized segment must be
// an unsigned decimal integer no larger than MaxSegmentValue.
// Segment errors are INVALID_REQUEST and wrap ErrNonNumeric,
// ErrNegativeComponent or ErrSegmentOverflow.
func Validate(version string, segments int) error {
	if err := checkBounds(version, segments); err != nil {
		return err
	}

	for i, s := range Normalize(version, segments) {
		var cause error
		v, ok := ParseSegment(s)
		switch {
		case !ok && isNegative(s):
			cause = fmt.Errorf("%w: %s", ErrNegativeComponent, s)
		case !ok && s == "":
			cause = fmt.Errorf("%w: empty segment", ErrNonNumeric)
		case !ok:
			cause = fmt.Errorf("%w: %q", ErrNonNumeric, s)
		case v.Cmp(Uint128From64(MaxSegmentValue)) > 0:
			cause = fmt.Errorf("%w: %s", ErrSegmentOverflow, s)
		}
		if cause != nil {
			return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				"invalid version segment", cause, map[string]any{
					"version": version,
					"segment": i,
					"value":   s,
				})
		}
	}
	return nil
}

func checkBounds(version string, segments int) error {
	if n := len(version); n < MinVersionLength || n > MaxVersionLength {
		return apperrors.WrapWithContext(apperrors.ErrCodeOutOfRange,
			"invalid version", ErrVersionLength, map[string]any{
				"length": n,
			})
	}
	return CheckSegments(segments)
}

// CheckSegments returns an OUT_OF_RANGE error wrapping ErrSegmentCount when
// segments is outside [MinSegments, MaxSegments].
func CheckSegments(segments int) error {
	if segments < MinSegments || segments > MaxSegments {
		return apperrors.WrapWithContext(apperrors.ErrCodeOutOfRange,
			"invalid segment count", ErrSegmentCount, map[string]any{
				"segments": segments,
			})
	}
	return nil
}

func isNegative(s string) bool {
	digits, ok := strings.CutPrefix(s, "-")
	if !ok || digits == "" {
		return false
	}
	_, parsed := ParseSegment(digits)
	return parsed && digits[0] != '+'
}
