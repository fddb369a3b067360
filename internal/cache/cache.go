// Package cache stores serialized analysis reports keyed by their inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"
)

// Store is a byte-oriented key/value cache with per-entry expiry.
type Store interface {
	// Get returns the value and true on a hit, false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for ttl; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// Key derives a stable cache key from an analysis mode, a key length range
// and the ciphertexts. Text boundaries are length-prefixed so that
// ["ab","c"] and ["a","bc"] differ.
func Key(mode string, min, max int, texts []string) string {
	h := sha256.New()
	var buf [8]byte
	write := func(s string) {
		binary.BigEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		h.Write([]byte(s))
	}
	write(mode)
	binary.BigEndian.PutUint64(buf[:], uint64(min))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(max))
	h.Write(buf[:])
	for _, t := range texts {
		write(t)
	}

	return mode + ":" + hex.EncodeToString(h.Sum(nil))
}

type entry struct {
	value   []byte
	expires time.Time // zero means never
}

// Memory is an in-process Store. Expired entries are dropped lazily on Get.
type Memory struct {
	mu    sync.RWMutex
	items map[string]entry
	now   func() time.Time
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// NewMemory returns an empty in-memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{items: make(map[string]entry), now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	return m
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()

		return nil, false, nil
	}

	return append([]byte(nil), e.value...), true, nil
}

// Set implements Store.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.mu.Lock()
	m.items[key] = e
	m.mu.Unlock()

	return nil
}

// Ping implements Store; memory is always reachable.
func (m *Memory) Ping(context.Context) error { return nil }

// Len returns the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}
