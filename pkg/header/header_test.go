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

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNew(t *testing.T) {
	h := New(WithKind(KindKeySet), WithMetadata("segments", "3"))

	assert.Equal(t, KindKeySet, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "3", h.Metadata["segments"])

	h = New(WithAPIVersion("v0"))
	assert.Equal(t, "v0", h.APIVersion)
	assert.NotNil(t, h.Metadata)
}

func TestWithMetadataInitializesMap(t *testing.T) {
	var h Header
	WithMetadata("k", "v")(&h)
	assert.Equal(t, map[string]string{"k": "v"}, h.Metadata)
}

func TestKindIsValid(t *testing.T) {
	assert.True(t, KindKeySet.IsValid())
	assert.False(t, Kind("Snapshot").IsValid())
	assert.False(t, Kind("").IsValid())
	assert.Equal(t, "KeySet", KindKeySet.String())
}

func TestInit(t *testing.T) {
	h := Header{Metadata: map[string]string{"stale": "x"}}
	h.Init(KindKeySet, "v1.2.3")

	assert.Equal(t, KindKeySet, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.NotEmpty(t, h.Metadata["timestamp"])
	assert.Equal(t, "v1.2.3", h.Metadata["version"])
	assert.NotContains(t, h.Metadata, "stale")

	h.Init(KindKeySet, "")
	assert.NotContains(t, h.Metadata, "version")
}

func TestCheck(t *testing.T) {
	h := New(WithKind(KindKeySet))
	require.NoError(t, h.Check(KindKeySet))
	assert.Error(t, h.Check(Kind("Snapshot")))

	h.APIVersion = "verkey.nvidia.com/v0"
	assert.Error(t, h.Check(KindKeySet))
}

func TestInlineYAML(t *testing.T) {
	type doc struct {
		Header `yaml:",inline"`
		Count  int `yaml:"count"`
	}

	in := doc{Header: *New(WithKind(KindKeySet)), Count: 2}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "kind: KeySet")
	assert.Contains(t, string(out), "apiVersion: "+APIVersion)

	var back doc
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, KindKeySet, back.Kind)
	assert.Equal(t, 2, back.Count)
}
