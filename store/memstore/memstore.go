// Package memstore implements an in-process store over a plain map. Keys are
// stored verbatim (identity storage), which makes it handy for tests and for
// inspecting what the cache layer actually writes.
package memstore

import (
	"context"
	"sync"

	st "github.com/unkn0wn-root/typecache/store"
)

type Store struct {
	mu sync.RWMutex
	m  map[string][]byte
}

var _ st.Store = (*Store)(nil)

func New() *Store {
	return &Store{m: make(map[string][]byte)}
}

func (s *Store) Put(ctx context.Context, key string, value []byte) (bool, error) {
	if value == nil {
		return s.Remove(ctx, key)
	}
	// copy so later caller mutations cannot leak into the store
	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	s.m[key] = v
	s.mu.Unlock()
	return true, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	v, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

func (s *Store) Remove(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	_, ok := s.m[key]
	delete(s.m, key)
	s.mu.Unlock()
	return ok, nil
}

func (s *Store) Contains(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	_, ok := s.m[key]
	s.mu.RUnlock()
	return ok, nil
}

func (s *Store) Close(_ context.Context) error { return nil }

// Len reports the number of stored keys. Test helper.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
