package state

import (
	"context"
	"sync"
)

// NotifiedSet records which alarm keys have already produced a notification.
// Implementations must be safe for concurrent use.
type NotifiedSet interface {
	Add(ctx context.Context, key string) error
	Contains(ctx context.Context, key string) (bool, error)
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// MemorySet is the default in-process NotifiedSet.
type MemorySet struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewMemorySet creates an empty in-memory set
func NewMemorySet() *MemorySet {
	return &MemorySet{keys: make(map[string]struct{})}
}

// Add records a key
func (s *MemorySet) Add(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = struct{}{}
	return nil
}

// Contains reports whether a key has been recorded
func (s *MemorySet) Contains(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[key]
	return ok, nil
}

// Remove clears a single key
func (s *MemorySet) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
	return nil
}

// Clear empties the set
func (s *MemorySet) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = make(map[string]struct{})
	return nil
}
