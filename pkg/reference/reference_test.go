package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/version"
)

func TestParseImage(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want Image
	}{
		{
			name: "fully qualified",
			ref:  "nvcr.io/nvidia/gpu-operator:v25.3.0",
			want: Image{Registry: "nvcr.io", Repository: "nvidia/gpu-operator", Tag: "v25.3.0"},
		},
		{
			name: "docker hub short name",
			ref:  "nginx:1.27.2-alpine",
			want: Image{Registry: "docker.io", Repository: "library/nginx", Tag: "1.27.2-alpine"},
		},
		{
			name: "registry with port",
			ref:  "localhost:5000/team/app:2.0",
			want: Image{Registry: "localhost:5000", Repository: "team/app", Tag: "2.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseImage(tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseImageErrors(t *testing.T) {
	for _, ref := range []string{"", "nginx", "UPPERCASE:1.0", "nginx:bad tag", "nvcr.io/nvidia/app:"} {
		t.Run(ref, func(t *testing.T) {
			_, err := ParseImage(ref)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
		})
	}
}

func TestTagVersion(t *testing.T) {
	tests := map[string]string{
		"v1.2.3":        "1.2.3",
		"V2":            "2",
		"1.27.2-alpine": "1.27.2",
		"1.0.0+build.7": "1.0.0",
		"latest":        "latest",
		"v":             "",
	}
	for tag, want := range tests {
		assert.Equal(t, want, TagVersion(tag), tag)
	}
}

func TestImageKey(t *testing.T) {
	img, err := ParseImage("nvcr.io/nvidia/gpu-operator:v25.3.0")
	require.NoError(t, err)

	key, err := img.Key(3)
	require.NoError(t, err)
	assert.Equal(t, version.MustEncode("25.3.0", 3), key)
	assert.Equal(t, "nvcr.io/nvidia/gpu-operator:v25.3.0", img.String())

	// a bare "v" tag leaves nothing to encode
	bare := &Image{Registry: "docker.io", Repository: "library/app", Tag: "v"}
	_, err = bare.Key(3)
	assert.ErrorIs(t, err, version.ErrVersionLength)
}

func TestSortImages(t *testing.T) {
	refs := []string{
		"nginx:1.27.2",
		"nginx:1.9.15",
		"nginx:v1.27.10-alpine",
		"nginx:latest",
		"nginx:1.27.2-alpine",
	}

	got, err := SortImages(refs, 3)
	require.NoError(t, err)
	require.Len(t, got, len(refs))

	tags := make([]string, len(got))
	for i, k := range got {
		tags[i] = k.Image.Tag
	}
	// "latest" is not numeric and packs as zero
	assert.Equal(t, []string{"latest", "1.9.15", "1.27.2", "1.27.2-alpine", "v1.27.10-alpine"}, tags)
	assert.Equal(t, "docker.io/library/nginx:latest", got[0].Text())
}

func TestSortImagesError(t *testing.T) {
	_, err := SortImages([]string{"nginx:1.0", "nginx"}, 2)
	assert.Error(t, err)
}
