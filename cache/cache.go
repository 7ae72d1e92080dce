// Package cache stores previously validated credentials so the engine can
// reuse a profile without re-running signature verification.
//
// A Store is a pure key-value map from the exact raw token string to the
// profile it produced and when. It holds no verification or staleness
// logic: the authentication engine computes freshness from CreatedAt at
// lookup time, which keeps implementations swappable. Stale entries are
// never deleted here; they are overwritten by the next successful
// verification of the same token.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/kbukum/authkit/auth/identity"
)

// Entry is a cached credential: the profile a token produced and the time
// it was stored.
type Entry struct {
	Profile   *identity.Profile `json:"profile"`
	CreatedAt time.Time         `json:"created_at"`
}

// Store is the credential cache contract. Lookup returns (nil, nil) on a
// miss. Save overwrites any existing entry for the token; last writer
// wins under concurrency.
type Store interface {
	Lookup(ctx context.Context, token string) (*Entry, error)
	Save(ctx context.Context, token string, entry Entry) error
}

// Memory is an in-process Store backed by a mutex-guarded map. It is safe
// for concurrent use and keeps at most one entry per token.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

// Lookup implements Store.
func (m *Memory) Lookup(_ context.Context, token string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[token]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// Save implements Store.
func (m *Memory) Save(_ context.Context, token string, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[token] = entry
	return nil
}

// Len reports the number of live entries, stale ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

var _ Store = (*Memory)(nil)
