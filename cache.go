package typecache

import (
	"context"
	"fmt"

	c "github.com/unkn0wn-root/typecache/codec"
	"github.com/unkn0wn-root/typecache/keys"
	st "github.com/unkn0wn-root/typecache/store"
)

// cache bridges a domain type V and the raw bytes a store holds: it applies
// the key transform, runs values through the codec and delegates physical
// I/O to the store.
type cache[V any] struct {
	st        st.Store
	transform keys.Transform
	codec     c.Codec[V]
	log       Logger
}

var _ Cache[string] = (*cache[string])(nil)

func newTypedCache[V any](cfg *config, transform keys.Transform, codec c.Codec[V]) *cache[V] {
	return &cache[V]{
		st:        cfg.store,
		transform: transform,
		codec:     codec,
		log:       cfg.log,
	}
}

func (c *cache[V]) Put(ctx context.Context, key string, value *V) (bool, error) {
	k := c.transform(key)
	if value == nil {
		// nil value is an alias for remove; the store reports whether a
		// prior value existed
		c.log.Debug("put nil value, removing", Fields{"key": key})
		ok, err := c.st.Put(ctx, k, nil)
		if err != nil {
			return false, &StoreError{Op: "put", Key: key, Err: err}
		}
		return ok, nil
	}

	b, err := c.codec.Encode(*value)
	if err != nil {
		return false, err
	}
	if len(b) == 0 {
		// an empty payload would read back as absent
		return false, fmt.Errorf("%w: key %q", ErrEmptyValue, key)
	}

	ok, err := c.st.Put(ctx, k, b)
	if err != nil {
		return false, &StoreError{Op: "put", Key: key, Err: err}
	}
	return ok, nil
}

func (c *cache[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	raw, ok, err := c.st.Get(ctx, c.transform(key))
	if err != nil {
		return zero, false, &StoreError{Op: "get", Key: key, Err: err}
	}
	// zero-length payload means absent, same as a store miss
	if !ok || len(raw) == 0 {
		return zero, false, nil
	}
	v, err := c.codec.Decode(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (c *cache[V]) Remove(ctx context.Context, key string) (bool, error) {
	ok, err := c.st.Remove(ctx, c.transform(key))
	if err != nil {
		return false, &StoreError{Op: "remove", Key: key, Err: err}
	}
	return ok, nil
}

func (c *cache[V]) Contains(ctx context.Context, key string) (bool, error) {
	ok, err := c.st.Contains(ctx, c.transform(key))
	if err != nil {
		return false, &StoreError{Op: "contains", Key: key, Err: err}
	}
	return ok, nil
}
