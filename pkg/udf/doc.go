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

// Package udf adapts version.Encode to loosely typed host call conventions
// such as database scalar functions or script bridges.
//
// Hosts hand over positional arguments of arbitrary type. The adapter checks
// the argument count, coerces the first argument to text and the second to a
// signed integer, and only then runs the encoder:
//
//	key, err := udf.Call("1.22.3", 3)
//	key, err := udf.Call([]byte("1.22.3"), "3")
//
// Count and type problems are reported with code USAGE before any encoding
// work happens; range problems come back from version.Encode with code
// OUT_OF_RANGE.
package udf
