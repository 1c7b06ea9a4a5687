package preset

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory preset store for tests and single-process
// deployments. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{presets: make(map[string]Preset)}
}

// Get retrieves a preset by name.
func (s *MemoryStore) Get(ctx context.Context, name string) (*Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Put creates or replaces a preset.
func (s *MemoryStore) Put(ctx context.Context, p *Preset) error {
	if p == nil || p.Name == "" {
		return ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := s.presets[p.Name].CreatedAt
	stamp(p, created)
	s.presets[p.Name] = *p
	return nil
}

// List returns all presets sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a preset by name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[name]; !ok {
		return ErrNotFound
	}
	delete(s.presets, name)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
