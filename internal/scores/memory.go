// internal/scores/memory.go
//
// In-memory implementation of the Store interface.
// A lightweight backend for tests and throwaway sessions where
// durability is not required.
//
// Characteristics:
//   - Entries held in an append-order slice.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package scores

import (
	"context"
	"sync"
)

// memory is a slice-backed Store implementation.
type memory struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

// Append adds the entry to the in-memory collection.
func (m *memory) Append(ctx context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

// Top ranks the held entries best-first.
func (m *memory) Top(ctx context.Context, limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return rank(m.entries, limit), nil
}
