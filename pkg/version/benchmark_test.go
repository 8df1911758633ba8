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
	"testing"
)

func BenchmarkEncode(b *testing.B) {
	tests := []string{
		"1",
		"1.2",
		"1.2.3",
		"1.22.3.7",
		"4294967295.4294967295.4294967295.4294967295",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = Encode(input, 4)
	}
}

func BenchmarkEncodeSmall(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Encode("1.2.3", 3)
	}
}

func BenchmarkEncodeWide(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Encode("4294967295.4294967295.4294967295.4294967295", 4)
	}
}

func BenchmarkEncodeStrict(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = EncodeStrict("1.22.3.7", 4)
	}
}

func BenchmarkNormalize(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Normalize("1.2", 4)
	}
}

func BenchmarkPack(b *testing.B) {
	segments := []string{"1", "22", "3", "7"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Pack(segments)
	}
}

func BenchmarkSymbolize(b *testing.B) {
	v := Pack([]string{"1", "22", "3", "7"})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Symbolize(v)
	}
}

func BenchmarkDecode(b *testing.B) {
	key := MustEncode("1.22.3.7", 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(key)
	}
}
