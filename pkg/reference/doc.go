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

// Package reference derives version keys from container image tags.
//
// Image tags usually carry a version ("nvcr.io/nvidia/gpu-operator:v25.3.0",
// "nginx:1.27.2-alpine"). ParseImage splits a reference with
// github.com/distribution/reference, TagVersion strips the conventional "v"
// prefix and any "-suffix" or "+metadata", and Image.Key encodes the rest with
// version.Encode so images can be ordered by release.
//
//	img, err := reference.ParseImage("nvcr.io/nvidia/gpu-operator:v25.3.0")
//	key, err := img.Key(3)
//
// References without a tag, or with digests only, are rejected.
package reference
