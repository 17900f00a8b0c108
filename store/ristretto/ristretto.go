// Package ristretto implements a store backed by dgraph-io/ristretto.
// Ristretto admits writes asynchronously and may drop entries under
// pressure; the store waits for admission so reads observe prior writes,
// but a rejected write is reported as ok=false, not an error.
package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	st "github.com/unkn0wn-root/typecache/store"
)

type Store struct {
	c *rc.Cache
}

var _ st.Store = (*Store)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Store, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) (bool, error) {
	if value == nil {
		return s.Remove(ctx, key)
	}
	ok := s.c.Set(key, value, int64(len(value)))
	// Set is async; wait so the synchronous store contract holds.
	s.c.Wait()
	return ok, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		s.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (s *Store) Remove(_ context.Context, key string) (bool, error) {
	_, existed := s.c.Get(key)
	s.c.Del(key)
	s.c.Wait()
	return existed, nil
}

func (s *Store) Contains(_ context.Context, key string) (bool, error) {
	_, ok := s.c.Get(key)
	return ok, nil
}

func (s *Store) Close(_ context.Context) error {
	s.c.Wait()
	s.c.Close()
	return nil
}

// Metrics exposes ristretto's metrics for the embedding application (not
// part of the store contract).
func (s *Store) Metrics() *rc.Metrics { return s.c.Metrics }
