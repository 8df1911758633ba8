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
	"slices"
	"sort"
	"sync"

	"github.com/NVIDIA/verkey/pkg/version"
)

// Memory is an in-process Index over a sorted slice of members.
type Memory struct {
	mu       sync.RWMutex
	segments int
	members  []string
	closed   bool
}

var _ Index = (*Memory)(nil)

// NewMemory returns an empty in-memory index for the given segment count.
func NewMemory(segments int) (*Memory, error) {
	if err := version.CheckSegments(segments); err != nil {
		return nil, err
	}
	return &Memory{segments: segments}, nil
}

// Segments implements Index.
func (m *Memory) Segments() int {
	return m.segments
}

// Put implements Index.
func (m *Memory) Put(ctx context.Context, v string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	e, err := newEntry(v, m.segments)
	if err != nil {
		return Entry{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return Entry{}, closedError()
	}

	member := e.member()
	i, found := slices.BinarySearch(m.members, member)
	if !found {
		m.members = slices.Insert(m.members, i, member)
	}
	return e, nil
}

// Range implements Index.
func (m *Memory) Range(ctx context.Context, min, max string, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lo, hi, err := memberBounds(m.segments, min, max)
	if err != nil {
		return nil, err
	}
	limit = rangeLimit(limit)

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, closedError()
	}

	start := sort.SearchStrings(m.members, lo)
	entries := make([]Entry, 0)
	for _, member := range m.members[start:] {
		if hi != "" && member >= hi {
			break
		}
		if len(entries) == limit {
			break
		}
		e, err := parseMember(member)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Delete implements Index.
func (m *Memory) Delete(ctx context.Context, v string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e, err := newEntry(v, m.segments)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return closedError()
	}

	i, found := slices.BinarySearch(m.members, e.member())
	if !found {
		return notIndexed(v)
	}
	m.members = slices.Delete(m.members, i, i+1)
	return nil
}

// Len implements Index.
func (m *Memory) Len(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, closedError()
	}
	return int64(len(m.members)), nil
}

// Close drops all entries. Later calls return SERVICE_UNAVAILABLE.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.members = nil
	return nil
}
