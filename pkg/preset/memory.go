package preset

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/stairforge/pkg/errors"
)

// MemoryStore is an in-memory preset store for development and testing.
type MemoryStore struct {
	mu      sync.RWMutex
	presets map[string]Preset
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{presets: make(map[string]Preset)}
}

func (s *MemoryStore) Get(ctx context.Context, name string) (Preset, error) {
	if err := errors.ValidatePresetName(name); err != nil {
		return Preset{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.presets[name]
	if !ok {
		return Preset{}, notFound(name)
	}
	return p, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	presets := make([]Preset, 0, len(s.presets))
	for _, p := range s.presets {
		presets = append(presets, p)
	}
	slices.SortFunc(presets, func(a, b Preset) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return presets, nil
}

func (s *MemoryStore) Put(ctx context.Context, p Preset) (Preset, error) {
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var prev *Preset
	if existing, ok := s.presets[p.Name]; ok {
		prev = &existing
	}
	p = stamp(p, prev)
	s.presets[p.Name] = p
	return p, nil
}

func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidatePresetName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[name]; !ok {
		return notFound(name)
	}
	delete(s.presets, name)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
