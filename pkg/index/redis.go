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
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/NVIDIA/verkey/pkg/defaults"
	apperrors "github.com/NVIDIA/verkey/pkg/errors"
	"github.com/NVIDIA/verkey/pkg/version"
)

// RedisConfig configures the Redis index. Defaults can be loaded via envdecode.
type RedisConfig struct {
	// Addr like "localhost:6379". ENV: REDIS_ADDR
	Addr string `env:"REDIS_ADDR,default=localhost:6379"`
	// Password for AUTH, empty for none. ENV: REDIS_PASSWORD
	Password string `env:"REDIS_PASSWORD"`
	// DB selects the logical database. ENV: REDIS_DB
	DB int `env:"REDIS_DB,default=0,strict"`
	// KeyPrefix for the sorted set name. ENV: VERKEY_INDEX_PREFIX
	KeyPrefix string `env:"VERKEY_INDEX_PREFIX,default=verkey:index:"`
}

// Redis is an Index stored in a Redis sorted set. All members have score 0,
// so Redis orders them lexicographically.
type Redis struct {
	client   *redis.Client
	setKey   string
	segments int
}

var _ Index = (*Redis)(nil)

// NewRedis connects to Redis and returns an index for the given segment
// count. Indexes with different segment counts use different sets.
func NewRedis(ctx context.Context, cfg RedisConfig, segments int) (*Redis, error) {
	if err := version.CheckSegments(segments); err != nil {
		return nil, err
	}

	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:6379"
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "verkey:index:"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  defaults.IndexDialTimeout,
		ReadTimeout:  defaults.IndexReadTimeout,
		WriteTimeout: defaults.IndexWriteTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaults.IndexOperationTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeUnavailable,
			"redis ping failed", err, map[string]any{"addr": addr})
	}

	return &Redis{
		client:   client,
		setKey:   prefix + "s" + strconv.Itoa(segments),
		segments: segments,
	}, nil
}

// Segments implements Index.
func (r *Redis) Segments() int {
	return r.segments
}

// Put implements Index.
func (r *Redis) Put(ctx context.Context, v string) (Entry, error) {
	e, err := newEntry(v, r.segments)
	if err != nil {
		return Entry{}, err
	}
	if err := r.client.ZAdd(ctx, r.setKey, redis.Z{Score: 0, Member: e.member()}).Err(); err != nil {
		return Entry{}, r.wrap("zadd", err)
	}
	return e, nil
}

// Range implements Index.
func (r *Redis) Range(ctx context.Context, min, max string, limit int) ([]Entry, error) {
	lo, hi, err := memberBounds(r.segments, min, max)
	if err != nil {
		return nil, err
	}

	by := &redis.ZRangeBy{
		Min:   "-",
		Max:   "+",
		Count: int64(rangeLimit(limit)),
	}
	if lo != "" {
		by.Min = "[" + lo
	}
	if hi != "" {
		by.Max = "(" + hi
	}

	members, err := r.client.ZRangeByLex(ctx, r.setKey, by).Result()
	if err != nil {
		return nil, r.wrap("zrangebylex", err)
	}

	entries := make([]Entry, 0, len(members))
	for _, m := range members {
		e, err := parseMember(m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Delete implements Index.
func (r *Redis) Delete(ctx context.Context, v string) error {
	e, err := newEntry(v, r.segments)
	if err != nil {
		return err
	}
	removed, err := r.client.ZRem(ctx, r.setKey, e.member()).Result()
	if err != nil {
		return r.wrap("zrem", err)
	}
	if removed == 0 {
		return notIndexed(v)
	}
	return nil
}

// Len implements Index.
func (r *Redis) Len(ctx context.Context) (int64, error) {
	n, err := r.client.ZCard(ctx, r.setKey).Result()
	if err != nil {
		return 0, r.wrap("zcard", err)
	}
	return n, nil
}

// Close closes the Redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) wrap(op string, err error) error {
	code := apperrors.ErrCodeUnavailable
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = apperrors.ErrCodeTimeout
	case errors.Is(err, redis.ErrClosed):
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, "index unavailable", ErrClosed)
	}
	return apperrors.WrapWithContext(code, fmt.Sprintf("redis %s failed", op), err,
		map[string]any{"set": r.setKey})
}
