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

package api

import "github.com/NVIDIA/verkey/pkg/index"

// KeyResponse is returned by GET /v1/key.
type KeyResponse struct {
	Version  string `json:"version" yaml:"version"`
	Segments int    `json:"segments" yaml:"segments"`
	Key      string `json:"key" yaml:"key"`
}

// BulkRequest is the body of POST /v1/keys.
type BulkRequest struct {
	Segments int      `json:"segments" yaml:"segments"`
	Strict   bool     `json:"strict,omitempty" yaml:"strict,omitempty"`
	Versions []string `json:"versions" yaml:"versions"`
}

// BulkResponse is returned by POST /v1/keys. Results keep request order.
type BulkResponse struct {
	Segments int         `json:"segments" yaml:"segments"`
	Results  []KeyResult `json:"results" yaml:"results"`
	Failed   int         `json:"failed" yaml:"failed"`
}

// KeyResult is one encoded version. Exactly one of Key and Error is set.
type KeyResult struct {
	Version string     `json:"version" yaml:"version"`
	Key     string     `json:"key,omitempty" yaml:"key,omitempty"`
	Error   *ItemError `json:"error,omitempty" yaml:"error,omitempty"`
}

// ItemError describes why one bulk item failed.
type ItemError struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// IndexPutRequest is the body of POST /v1/index.
type IndexPutRequest struct {
	Version string `json:"version" yaml:"version"`
}

// IndexRangeResponse is returned by GET /v1/index.
type IndexRangeResponse struct {
	Min     string        `json:"min,omitempty" yaml:"min,omitempty"`
	Max     string        `json:"max,omitempty" yaml:"max,omitempty"`
	Count   int           `json:"count" yaml:"count"`
	Entries []index.Entry `json:"entries" yaml:"entries"`
}
