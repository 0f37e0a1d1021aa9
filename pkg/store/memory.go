package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-process chart store for development and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	charts map[string]Chart
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{charts: make(map[string]Chart)}
}

func (s *MemoryStore) SaveChart(ctx context.Context, c *Chart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.UpdatedAt = time.Now().UTC()
	s.charts[c.ID] = *c
	return nil
}

func (s *MemoryStore) GetChart(ctx context.Context, id string) (*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.charts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) ListCharts(ctx context.Context, limit int) ([]*Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Chart, 0, len(s.charts))
	for id := range s.charts {
		c := s.charts[id]
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) DeleteChart(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.charts[id]; !ok {
		return ErrNotFound
	}
	delete(s.charts, id)
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
