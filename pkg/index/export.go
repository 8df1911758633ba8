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
	"context"
	"fmt"

	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/header"
	"github.com/NVIDIA/verkey/pkg/version"
)

// KeySet is a portable copy of an index.
type KeySet struct {
	header.Header `json:",inline" yaml:",inline"`

	// Segments is the segment count every entry key was encoded with.
	Segments int `json:"segments" yaml:"segments" jsonschema:"minimum=1,maximum=4"`

	// Entries in key order.
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Export reads every entry of idx into a KeySet. toolVersion is recorded in
// the header metadata.
func Export(ctx context.Context, idx Index, toolVersion string) (*KeySet, error) {
	n, err := idx.Len(ctx)
	if err != nil {
		return nil, err
	}

	ks := &KeySet{
		Segments: idx.Segments(),
		Entries:  []Entry{},
	}
	ks.Init(header.KindKeySet, toolVersion)

	if n == 0 {
		return ks, nil
	}

	entries, err := idx.Range(ctx, "", "", int(n))
	if err != nil {
		return nil, err
	}
	ks.Entries = entries
	return ks, nil
}

// Import puts every entry of ks into idx and returns how many were stored.
// The KeySet must have been exported with the same segment count, and each
// stored key must match the key recorded for its version.
func Import(ctx context.Context, idx Index, ks *KeySet) (int, error) {
	if ks == nil {
		return 0, apperrors.New(apperrors.ErrCodeInvalidRequest, "key set is nil")
	}
	if err := ks.Check(header.KindKeySet); err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid key set", err)
	}
	if ks.Segments != idx.Segments() {
		return 0, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("key set has %d segments, index has %d", ks.Segments, idx.Segments()),
			map[string]any{"keySetSegments": ks.Segments, "indexSegments": idx.Segments()})
	}

	for i, want := range ks.Entries {
		if want.Key != "" {
			key, err := version.Encode(want.Version, idx.Segments())
			if err != nil {
				return i, err
			}
			if key != want.Key {
				return i, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
					"entry key does not match its version",
					map[string]any{"version": want.Version, "key": want.Key, "encoded": key})
			}
		}
		if _, err := idx.Put(ctx, want.Version); err != nil {
			return i, err
		}
	}
	return len(ks.Entries), nil
}
