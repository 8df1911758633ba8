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

// SegmentSeparator separates the components of a version string.
const SegmentSeparator = "."

// zeroSegment pads versions with fewer components than requested.
const zeroSegment = "0"

// Normalize splits version on "." and returns exactly count segments.
// Missing trailing segments are filled with "0"; extra trailing segments are
// dropped. Segments are not validated here, so "1..x" yields ["1", "", "x"].
// A negative count is treated as zero.
func Normalize(version string, count int) []string {
	if count < 0 {
		count = 0
	}
	parts := strings.Split(version, SegmentSeparator)
	if len(parts) >= count {
		return parts[:count:count]
	}

	segments := make([]string, count)
	n := copy(segments, parts)
	for i := n; i < count; i++ {
		segments[i] = zeroSegment
	}
	return segments
}
