package typecache

import "context"

// SingleCache caches at most one instance of a concrete object type T per
// configuration. The logical key is derived from T's type name, so the
// keyless Put/Get/Remove/Contains always address the same entry.
type SingleCache[T any] struct {
	c   Cache[T]
	key string
}

// SingleObject returns the single-object cache for T. Like Objects, T must
// be a concrete cacheable object type (ErrMissingType otherwise).
func SingleObject[T any](r *Registry) (*SingleCache[T], error) {
	c, err := Objects[T](r)
	if err != nil {
		return nil, err
	}
	return &SingleCache[T]{c: c, key: targetOf[T]().String()}, nil
}

// Put stores value as the single cached instance of T. A nil value removes it.
func (s *SingleCache[T]) Put(ctx context.Context, value *T) (bool, error) {
	return s.c.Put(ctx, s.key, value)
}

// Get returns the cached instance of T, or ok=false when absent.
func (s *SingleCache[T]) Get(ctx context.Context) (T, bool, error) {
	return s.c.Get(ctx, s.key)
}

// Remove deletes the cached instance and reports whether one existed.
func (s *SingleCache[T]) Remove(ctx context.Context) (bool, error) {
	return s.c.Remove(ctx, s.key)
}

// Contains reports whether an instance of T is cached.
func (s *SingleCache[T]) Contains(ctx context.Context) (bool, error) {
	return s.c.Contains(ctx, s.key)
}
