package memory

import (
	"context"
	"sync"
)

// SequenceStore is an in-memory numerator.SequenceStore. The single
// mutex makes number allocation strictly sequential, so a given key
// never hands out the same value twice within the process.
type SequenceStore struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewSequenceStore creates an empty sequence store.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{counters: make(map[string]int64)}
}

// Next increments and returns the counter for key.
func (s *SequenceStore) Next(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[key]++
	return s.counters[key], nil
}

// Set forces the counter for key.
func (s *SequenceStore) Set(ctx context.Context, key string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[key] = value
	return nil
}
