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
	"errors"
	"fmt"
	"strings"

	"github.com/joeshaw/envdecode"

	"github.com/NVIDIA/verkey/pkg/defaults"
	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/version"
)

// MemberSeparator joins key and version in a stored member.
const MemberSeparator = "|"

// upperSentinel is the byte right after MemberSeparator. Every member with a
// given key sorts strictly below key + upperSentinel.
const upperSentinel = "}"

// Backend names accepted by VERKEY_INDEX.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var (
	// ErrClosed is returned by operations on a closed index.
	ErrClosed = errors.New("index is closed")
	// ErrNotIndexed is returned when deleting a version that is not stored.
	ErrNotIndexed = errors.New("version is not indexed")
)

// Entry is one indexed version.
type Entry struct {
	Key     string `json:"key" yaml:"key" jsonschema:"pattern=^[A-J]{39}$"`
	Version string `json:"version" yaml:"version" jsonschema:"minLength=1,maxLength=44"`
}

// Text renders the entry as "KEY VERSION".
func (e Entry) Text() string {
	return e.Key + " " + e.Version
}

func (e Entry) member() string {
	return e.Key + MemberSeparator + e.Version
}

// Index stores versions ordered by their encoded keys.
// All entries of one index share the segment count it was created with.
type Index interface {
	// Put encodes and stores version. Storing the same version twice is a no-op.
	Put(ctx context.Context, version string) (Entry, error)
	// Range returns up to limit entries whose keys fall between the keys of
	// min and max, inclusive, in key order. An empty bound is unbounded and a
	// limit <= 0 uses defaults.IndexRangeLimit.
	Range(ctx context.Context, min, max string, limit int) ([]Entry, error)
	// Delete removes version. Missing versions are NOT_FOUND.
	Delete(ctx context.Context, version string) error
	// Len returns the number of stored entries.
	Len(ctx context.Context) (int64, error)
	// Segments returns the segment count keys are encoded with.
	Segments() int
	// Close releases backend resources.
	Close() error
}

// Config selects and configures an index backend from the environment.
type Config struct {
	Backend  string `env:"VERKEY_INDEX,default=memory"`
	Segments int    `env:"VERKEY_SEGMENTS,default=4,strict"`
	Redis    RedisConfig
}

// LoadConfig decodes Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid index configuration", err)
	}
	return cfg, nil
}

// New builds the index described by cfg.
func New(ctx context.Context, cfg Config) (Index, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendMemory:
		return NewMemory(cfg.Segments)
	case BackendRedis:
		return NewRedis(ctx, cfg.Redis, cfg.Segments)
	default:
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown index backend %q", cfg.Backend),
			map[string]any{"supported": []string{BackendMemory, BackendRedis}})
	}
}

// NewFromEnv builds an index using LoadConfig.
func NewFromEnv(ctx context.Context) (Index, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg)
}

func newEntry(v string, segments int) (Entry, error) {
	key, err := version.Encode(v, segments)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Key: key, Version: v}, nil
}

func parseMember(m string) (Entry, error) {
	key, v, ok := strings.Cut(m, MemberSeparator)
	if !ok || len(key) != version.KeyWidth {
		return Entry{}, apperrors.NewWithContext(apperrors.ErrCodeInternal,
			"malformed index member", map[string]any{"member": m})
	}
	return Entry{Key: key, Version: v}, nil
}

// memberBounds converts version bounds to member bounds. lo is inclusive and
// hi exclusive; an empty string means unbounded.
func memberBounds(segments int, min, max string) (lo, hi string, err error) {
	if min != "" {
		if lo, err = version.Encode(min, segments); err != nil {
			return "", "", err
		}
	}
	if max != "" {
		key, err := version.Encode(max, segments)
		if err != nil {
			return "", "", err
		}
		hi = key + upperSentinel
	}
	return lo, hi, nil
}

func rangeLimit(limit int) int {
	if limit <= 0 {
		return defaults.IndexRangeLimit
	}
	return limit
}

func notIndexed(v string) error {
	return apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
		"version not found", ErrNotIndexed, map[string]any{"version": v})
}

func closedError() error {
	return apperrors.Wrap(apperrors.ErrCodeUnavailable, "index unavailable", ErrClosed)
}
