package resultcache

import (
	"context"
	"sync"

	"github.com/hermes-rf/cstmcp/engine"
)

type inMemory struct {
	mu      sync.RWMutex
	storage map[string][]float64
}

// NewMemoryCache returns a process-local Cache.
func NewMemoryCache() Cache {
	return &inMemory{}
}

func (m *inMemory) Get(_ context.Context, req engine.FarFieldRequest) ([]float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.storage == nil {
		return nil, false
	}
	samples, ok := m.storage[Key(req)]
	return samples, ok
}

func (m *inMemory) Put(_ context.Context, req engine.FarFieldRequest, samples []float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.storage == nil {
		// create on first use
		m.storage = make(map[string][]float64)
	}
	m.storage[Key(req)] = samples
	return nil
}

func (m *inMemory) InvalidateAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storage = nil
	return nil
}
