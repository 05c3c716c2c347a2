// Package memstore provides an in-memory Store for tests and dry
// runs.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/readcircle/digest/pkg/digest/internalerr"
	"github.com/readcircle/digest/pkg/digest/store"
)

type memStore struct {
	mu     sync.RWMutex
	runs   map[string]store.Run
	closed bool
}

// New creates an empty in-memory store.
func New() store.Store {
	return &memStore{runs: make(map[string]store.Run)}
}

func (m *memStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *memStore) RecordRun(_ context.Context, r store.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return internalerr.ErrStoreClosed
	}
	m.runs[r.ID] = r
	return nil
}

func (m *memStore) GetRun(_ context.Context, id string) (store.Run, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return store.Run{}, false, internalerr.ErrStoreClosed
	}
	r, ok := m.runs[id]
	return r, ok, nil
}

func (m *memStore) ListRuns(_ context.Context, limit int) ([]store.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, internalerr.ErrStoreClosed
	}
	runs := make([]store.Run, 0, len(m.runs))
	for _, r := range m.runs {
		runs = append(runs, r)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
