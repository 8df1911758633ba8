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

package reference

import (
	"fmt"
	"sort"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/version"
)

// Image is a parsed, tagged container image reference.
type Image struct {
	// Registry is the registry host (e.g., "docker.io", "nvcr.io").
	Registry string `json:"registry" yaml:"registry"`
	// Repository is the repository path (e.g., "library/nginx").
	Repository string `json:"repository" yaml:"repository"`
	// Tag is the image tag as written (e.g., "v1.2.3-rc1").
	Tag string `json:"tag" yaml:"tag"`
}

// ParseImage parses ref with Docker normalization rules. A tag is required.
func ParseImage(ref string) (*Image, error) {
	named, err := reference.ParseNormalizedNamed(strings.TrimSpace(ref))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid image reference", err)
	}

	tagged, ok := named.(reference.Tagged)
	if !ok || tagged.Tag() == "" {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"image reference has no tag", map[string]any{"reference": ref})
	}

	return &Image{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
		Tag:        tagged.Tag(),
	}, nil
}

// String returns the fully qualified reference "registry/repository:tag".
func (i *Image) String() string {
	return fmt.Sprintf("%s/%s:%s", i.Registry, i.Repository, i.Tag)
}

// Version returns the dotted version carried by the tag.
func (i *Image) Version() string {
	return TagVersion(i.Tag)
}

// Key encodes the tag version with the given segment count.
func (i *Image) Key(segments int) (string, error) {
	key, err := version.Encode(i.Version(), segments)
	if err != nil {
		return "", fmt.Errorf("failed to encode tag %q of %s: %w", i.Tag, i.Repository, err)
	}
	return key, nil
}

// TagVersion strips a leading "v" or "V" and everything from the first "-"
// or "+" after it, so "v1.2.3-rc1" becomes "1.2.3".
func TagVersion(tag string) string {
	v := strings.TrimPrefix(strings.TrimPrefix(tag, "v"), "V")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	return v
}

// KeyedImage pairs an image with its key.
type KeyedImage struct {
	Image *Image `json:"image" yaml:"image"`
	Key   string `json:"key" yaml:"key"`
}

// Text returns the image reference, for line-oriented output.
func (k KeyedImage) Text() string {
	return k.Image.String()
}

// SortImages parses and keys refs, then orders them by key. Equal keys keep
// their input order. The first parse or encode failure aborts the sort.
func SortImages(refs []string, segments int) ([]KeyedImage, error) {
	out := make([]KeyedImage, 0, len(refs))
	for _, ref := range refs {
		img, err := ParseImage(ref)
		if err != nil {
			return nil, err
		}
		key, err := img.Key(segments)
		if err != nil {
			return nil, err
		}
		out = append(out, KeyedImage{Image: img, Key: key})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Key < out[b].Key
	})
	return out, nil
}
