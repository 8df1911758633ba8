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

import "strings"

// KeyWidth is the length of every encoded key: the number of decimal digits
// in MaxUint128.
const KeyWidth = 39

// symbols maps decimal digit d to symbols[d]. The table is strictly
// increasing, so keys sort the same way their digit strings do.
var symbols = [10]byte{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J'}

// Symbolize renders v as a KeyWidth-long string over the alphabet A..J.
// The decimal form of v is left-padded with zeros and each digit is replaced
// by its symbol.
func Symbolize(v Uint128) string {
	digits := v.String()

	var b strings.Builder
	b.Grow(KeyWidth)
	for i := len(digits); i < KeyWidth; i++ {
		b.WriteByte(symbols[0])
	}
	for i := 0; i < len(digits); i++ {
		b.WriteByte(symbolFor(digits[i]))
	}

	key := b.String()
	if len(key) > KeyWidth {
		key = key[:KeyWidth]
	}
	return key
}

// symbolFor returns the symbol for an ASCII digit. Anything else maps to the
// zero symbol.
func symbolFor(c byte) byte {
	if c < '0' || c > '9' {
		return symbols[0]
	}
	return symbols[c-'0']
}

// digitFor is the inverse of symbolFor.
func digitFor(c byte) (byte, bool) {
	if c < symbols[0] || c > symbols[len(symbols)-1] {
		return 0, false
	}
	return '0' + (c - symbols[0]), true
}
