package typecache

import (
	"context"

	st "github.com/unkn0wn-root/typecache/store"
)

// Cache is the typed cache API over a byte store. V is the caller's value
// type; serialization is handled by a pluggable codec.Codec[V].
//
// Absence is a normal return state, never an error: Get reports a miss as
// (zero, false, nil). A zero-length stored payload is treated as absent on
// read, which is why Put rejects values that encode to zero bytes
// (ErrEmptyValue) - an intentionally empty value cannot be represented.
type Cache[V any] interface {
	// Put stores value under key, replacing any previous value. A nil value
	// removes the key instead and reports whether a value was removed;
	// otherwise the result reports whether the write succeeded.
	Put(ctx context.Context, key string, value *V) (bool, error)

	// Get returns the value stored under key, or ok=false when absent.
	Get(ctx context.Context, key string) (v V, ok bool, err error)

	// Remove deletes key and reports whether a value was actually deleted.
	Remove(ctx context.Context, key string) (bool, error)

	// Contains reports whether a value is stored under key.
	Contains(ctx context.Context, key string) (bool, error)
}

// Options configures a Registry. Only Store is required; the converters are
// needed only when object caches are used, and only for the encodings that
// actually occur in stored payloads.
type Options struct {
	// Required
	Store st.Store

	// ByteConverter reconstructs objects from byte-encoded payloads (tag 0).
	ByteConverter ByteObjectConverter
	// JSONConverter reconstructs objects from JSON-encoded payloads (tag 1).
	JSONConverter JSONObjectConverter

	Logger Logger // if nil, NopLogger is used
}
