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
	"math/big"
	"strconv"
)

// SegmentBits is the shift applied per segment while packing.
const SegmentBits = 32

// Pack folds segments into a single Uint128, most significant segment first:
//
//	acc = (acc << 32) | value(segment)
//
// A segment that does not parse as an unsigned integer contributes zero.
// Values are OR-ed in at full width, so a segment of 2^32 or more spills into
// the slot of the segment before it, and anything shifted past bit 127 is
// lost. Both behaviours are part of the key format and must not change.
func Pack(segments []string) Uint128 {
	var acc Uint128
	for _, s := range segments {
		v, _ := ParseSegment(s)
		acc = acc.Lsh(SegmentBits).Or(v)
	}
	return acc
}

// ParseSegment parses s as an unsigned decimal integer of up to 128 bits.
// An optional leading "+" is accepted. It returns false for empty input,
// signs other than a single leading "+", non-ASCII-digit bytes and values
// above MaxUint128.
func ParseSegment(s string) (Uint128, bool) {
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return Uint128{}, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Uint128{}, false
		}
	}

	// fast path: 19 digits always fit in a uint64
	if len(s) <= 19 {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return Uint128{}, false
		}
		return Uint128From64(v), true
	}

	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, false
	}
	return Uint128FromBig(b)
}
