package typecache

import (
	"context"
	"fmt"
	"sync"

	c "github.com/unkn0wn-root/typecache/codec"
	"github.com/unkn0wn-root/typecache/keys"
	st "github.com/unkn0wn-root/typecache/store"
)

// Per-type key prefixes keep the typed caches' logical keys from colliding
// in the shared store, whatever transform the store applies on top.
const (
	prefixString = "StringCache:"
	prefixInt    = "IntCache:"
	prefixFloat  = "FloatCache:"
	prefixObject = "ObjectCache:"
)

// config is the immutable bundle shared by reference across every typed
// cache a Registry hands out. Never mutated after Configure.
type config struct {
	store    st.Store
	byteConv ByteObjectConverter
	jsonConv JSONObjectConverter
	log      Logger
}

// Registry hands out typed cache instances over one shared store and
// converter pair. A Registry is configured exactly once: Configure fails
// with ErrAlreadyConfigured on a second attempt, and requesting a cache
// before Configure fails with ErrNotConfigured.
//
// Construct registries explicitly and pass them around; there is no process
// global.
type Registry struct {
	mu  sync.Mutex
	cfg *config
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Configure(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("typecache: store is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg != nil {
		return ErrAlreadyConfigured
	}
	r.cfg = &config{
		store:    opts.Store,
		byteConv: opts.ByteConverter,
		jsonConv: opts.JSONConverter,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
	}
	r.cfg.log.Debug("registry configured", Fields{
		"byteConverter": opts.ByteConverter != nil,
		"jsonConverter": opts.JSONConverter != nil,
	})
	return nil
}

// Configured reports whether Configure has run.
func (r *Registry) Configured() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg != nil
}

// Close releases the underlying store.
func (r *Registry) Close(ctx context.Context) error {
	cfg, err := r.config()
	if err != nil {
		return err
	}
	return cfg.store.Close(ctx)
}

func (r *Registry) config() (*config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg == nil {
		return nil, ErrNotConfigured
	}
	return r.cfg, nil
}

// Strings returns the string cache (UTF-8 text payloads).
func (r *Registry) Strings() (Cache[string], error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	return newTypedCache[string](cfg, keys.Prefix(prefixString), c.String{}), nil
}

// Ints returns the integer cache (decimal text payloads).
func (r *Registry) Ints() (Cache[int64], error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	return newTypedCache[int64](cfg, keys.Prefix(prefixInt), c.Int64{}), nil
}

// Floats returns the float cache (shortest exact decimal text payloads; see
// codec.Float64 for the canonical format).
func (r *Registry) Floats() (Cache[float64], error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	return newTypedCache[float64](cfg, keys.Prefix(prefixFloat), c.Float64{}), nil
}

// Objects returns the cache for cacheable objects of concrete type T.
// T must implement ByteEncodable or JSONEncodable, and must not be an
// interface type (ErrMissingType). Each T gets its own key namespace.
func Objects[T any](r *Registry) (Cache[T], error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	oc, err := newObjectCodec[T](cfg)
	if err != nil {
		return nil, err
	}
	prefix := prefixObject + oc.target.String() + ":"
	return newTypedCache[T](cfg, keys.Prefix(prefix), oc), nil
}

// CacheOf returns a cache for arbitrary values of V using the supplied codec
// (JSON, CBOR, msgpack, protobuf, ...). namespace isolates its keys from
// every other typed cache and must be non-empty.
func CacheOf[V any](r *Registry, namespace string, codec c.Codec[V]) (Cache[V], error) {
	cfg, err := r.config()
	if err != nil {
		return nil, err
	}
	if namespace == "" {
		return nil, fmt.Errorf("typecache: namespace is required")
	}
	if codec == nil {
		return nil, fmt.Errorf("typecache: codec is required")
	}
	return newTypedCache[V](cfg, keys.Prefix(namespace+":"), codec), nil
}
