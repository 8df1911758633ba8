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

package server

import (
	"net/http"
	"strings"

	"github.com/elnormous/contenttype"
)

const (
	// DefaultAPIVersion is the default API version if none is negotiated
	DefaultAPIVersion = "v1"

	// vendorMediaPrefix precedes the version in vendor media types,
	// e.g. application/vnd.nvidia.verkey.v1+json.
	vendorMediaPrefix = "application/vnd.nvidia.verkey."
)

// supportedAPIVersions lists versions a client may negotiate.
var supportedAPIVersions = map[string]bool{
	"v1": true,
}

// acceptableMediaTypes are offered to Accept negotiation, vendor types first.
var acceptableMediaTypes = func() []contenttype.MediaType {
	types := make([]contenttype.MediaType, 0, len(supportedAPIVersions)+1)
	for v := range supportedAPIVersions {
		types = append(types, contenttype.NewMediaType(vendorMediaPrefix+v+"+json"))
	}
	return append(types, contenttype.NewMediaType("application/json"))
}()

// negotiateAPIVersion extracts the API version from the Accept header.
// Accept: application/vnd.nvidia.verkey.v1+json selects v1. Unknown,
// malformed or missing versions fall back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	if r.Header.Get("Accept") == "" {
		return DefaultAPIVersion
	}
	mt, _, err := contenttype.GetAcceptableMediaType(r, acceptableMediaTypes)
	if err != nil {
		return DefaultAPIVersion
	}
	rest, ok := strings.CutPrefix(mt.Type+"/"+mt.Subtype, vendorMediaPrefix)
	if !ok {
		return DefaultAPIVersion
	}
	version, _, _ := strings.Cut(rest, "+")
	if isValidAPIVersion(version) {
		return version
	}
	return DefaultAPIVersion
}

// isValidAPIVersion checks if the provided version string is a valid API version.
func isValidAPIVersion(version string) bool {
	return supportedAPIVersions[version]
}

// SetAPIVersionHeader sets the X-API-Version response header.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
