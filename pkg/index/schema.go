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

package index

import (
	"github.com/invopop/jsonschema"

	"github.com/NVIDIA/verkey/pkg/header"
)

// KeySetSchema returns the JSON Schema of a KeySet document, as written by
// Export and read by Import.
func KeySetSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(new(KeySet))
	s.ID = jsonschema.ID(header.APIVersion + "/" + string(header.KindKeySet))
	s.Title = string(header.KindKeySet)
	s.Description = "Index entries exported with the segment count their keys were encoded with."
	return s
}
