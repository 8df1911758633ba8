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
	"fmt"
	"math/big"
	"strings"

	apperrors "github.com/NVIDIA/verkey/pkg/errors"
)

// Decode reverses Symbolize. The key must be exactly KeyWidth symbols from
// A..J and denote a value that fits in 128 bits.
func Decode(key string) (Uint128, error) {
	if len(key) != KeyWidth {
		return Uint128{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid key", fmt.Errorf("%w: length %d, want %d", ErrInvalidKey, len(key), KeyWidth),
			map[string]any{"key": key})
	}

	digits := make([]byte, KeyWidth)
	for i := 0; i < len(key); i++ {
		d, ok := digitFor(key[i])
		if !ok {
			return Uint128{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				"invalid key", fmt.Errorf("%w: symbol %q at %d", ErrInvalidKey, key[i], i),
				map[string]any{"key": key})
		}
		digits[i] = d
	}

	b, _ := new(big.Int).SetString(string(digits), 10)
	v, ok := Uint128FromBig(b)
	if !ok {
		return Uint128{}, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid key", fmt.Errorf("%w: value exceeds 128 bits", ErrInvalidKey),
			map[string]any{"key": key})
	}
	return v, nil
}

// Unpack splits v into `segments` 32-bit slots, most significant first.
// It recovers the original segment values only when none of them exceeded
// MaxSegmentValue. segments is clamped to [0, MaxSegments].
func Unpack(v Uint128, segments int) []uint32 {
	segments = max(0, min(segments, MaxSegments))
	out := make([]uint32, segments)
	for i := segments - 1; i >= 0; i-- {
		out[i] = uint32(v.Lo)
		v = v.Rsh(SegmentBits)
	}
	return out
}

// FormatSegments joins segment values with ".".
func FormatSegments(values []uint32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, SegmentSeparator)
}

// Compare orders two versions by their keys. It returns -1, 0 or +1, or the
// Encode error of whichever input is rejected first.
func Compare(a, b string, segments int) (int, error) {
	ka, err := Encode(a, segments)
	if err != nil {
		return 0, err
	}
	kb, err := Encode(b, segments)
	if err != nil {
		return 0, err
	}
	return strings.Compare(ka, kb), nil
}
