package memory

import (
	"context"
	"sort"
	"sync"
)

// KeyedLockManager serializes writers per entity key. Keys are always
// taken in sorted order regardless of the order the caller names them,
// so two handlers locking overlapping key sets cannot deadlock.
type KeyedLockManager struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedLockManager creates a new keyed lock manager
func NewKeyedLockManager() *KeyedLockManager {
	return &KeyedLockManager{locks: make(map[string]*lockEntry)}
}

// Acquire blocks until all keys are held, returning a release function.
// Duplicate keys are collapsed.
func (m *KeyedLockManager) Acquire(ctx context.Context, keys ...string) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sorted := dedupe(keys)
	entries := make([]*lockEntry, 0, len(sorted))
	for _, key := range sorted {
		entries = append(entries, m.entry(key))
	}

	for _, entry := range entries {
		entry.mu.Lock()
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// Unlock in reverse acquisition order
			for i := len(entries) - 1; i >= 0; i-- {
				entries[i].mu.Unlock()
			}
			m.mu.Lock()
			for _, key := range sorted {
				if entry, ok := m.locks[key]; ok {
					entry.refs--
					if entry.refs == 0 {
						delete(m.locks, key)
					}
				}
			}
			m.mu.Unlock()
		})
	}

	return release, nil
}

func (m *KeyedLockManager) entry(key string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.locks[key]
	if !ok {
		entry = &lockEntry{}
		m.locks[key] = entry
	}
	entry.refs++
	return entry
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
