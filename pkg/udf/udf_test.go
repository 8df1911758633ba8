package udf

import (
	"math"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/version"
)

const key123 = "AAAAAAAAAAAAAAAAAAABIEEGHEEAICCJJEIGCBB"

func TestCallArgCount(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{name: "none", args: nil, want: "usage: semver_value(semver: str, segments: int8). Got 0 args"},
		{name: "one", args: []any{"1.2.3"}, want: "usage: semver_value(semver: str, segments: int8). Got 1 args"},
		{name: "three", args: []any{"1.2.3", 3, 3}, want: "usage: semver_value(semver: str, segments: int8). Got 3 args"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Call(tt.args...)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.Equal(t, apperrors.ErrCodeUsage, apperrors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCallCoercion(t *testing.T) {
	tests := []struct {
		name     string
		version  any
		segments any
	}{
		{name: "string and int", version: "1.2.3", segments: 3},
		{name: "bytes and int64", version: []byte("1.2.3"), segments: int64(3)},
		{name: "string and numeric string", version: "1.2.3", segments: " 3 "},
		{name: "string and uint8", version: "1.2.3", segments: uint8(3)},
		{name: "string and float", version: "1.2.3", segments: 3.9},
		{name: "stringer", version: stringer("1.2.3"), segments: int32(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Call(tt.version, tt.segments)
			require.NoError(t, err)
			assert.Equal(t, key123, got)
		})
	}
}

func TestCallNumericVersion(t *testing.T) {
	got, err := Call(7, 1)
	require.NoError(t, err)
	assert.Equal(t, version.MustEncode("7", 1), got)

	got, err = Call(1.5, 2)
	require.NoError(t, err)
	assert.Equal(t, version.MustEncode("1.5", 2), got)
}

func TestCallTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		args []any
	}{
		{name: "nil version", args: []any{nil, 3}},
		{name: "map version", args: []any{map[string]int{}, 3}},
		{name: "nil segments", args: []any{"1.2", nil}},
		{name: "text segments", args: []any{"1.2", "three"}},
		{name: "NaN segments", args: []any{"1.2", math.NaN()}},
		{name: "huge unsigned segments", args: []any{"1.2", uint64(math.MaxUint64)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Call(tt.args...)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeUsage, apperrors.CodeOf(err))
		})
	}
}

func TestCallRangeErrors(t *testing.T) {
	tests := []struct {
		name     string
		version  any
		segments any
		wantErr  error
	}{
		{name: "zero segments", version: "1.2", segments: 0, wantErr: version.ErrSegmentCount},
		{name: "five segments", version: "1.2", segments: 5, wantErr: version.ErrSegmentCount},
		{name: "segments beyond int32", version: "1.2", segments: int64(math.MaxInt32) + 5, wantErr: version.ErrSegmentCount},
		{name: "negative segments", version: "1.2", segments: int64(math.MinInt64), wantErr: version.ErrSegmentCount},
		{name: "empty version", version: "", segments: 1, wantErr: version.ErrVersionLength},
		{name: "long version", version: "1.2.3.4.5.6.7.8.9.10.11.12.13.14.15.16.17.18.19", segments: 1, wantErr: version.ErrVersionLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Call(tt.version, tt.segments)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, apperrors.ErrCodeOutOfRange, apperrors.CodeOf(err))
		})
	}
}

func TestToText(t *testing.T) {
	ip := net.ParseIP("10.0.0.1")
	got, err := ToText(ip)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", got)

	got, err = ToText(true)
	require.NoError(t, err)
	assert.Equal(t, "true", got)
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int64
	}{
		{int8(-2), -2},
		{uint16(4), 4},
		{uint(9), 9},
		{float32(2.7), 2},
		{-1.9, -1},
		{true, 1},
		{false, 0},
		{[]byte("12"), 12},
	}

	for _, tt := range tests {
		got, err := ToInt(tt.in)
		require.NoError(t, err, "%T(%v)", tt.in, tt.in)
		assert.Equal(t, tt.want, got, "%T(%v)", tt.in, tt.in)
	}

	_, err := ToInt(math.Inf(1))
	assert.Error(t, err)
}

type stringer string

func (s stringer) String() string { return string(s) }
