// Package store defines the byte-store abstraction used by typecache.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly
// the same []byte that was previously passed to Put for a key (no prepended
// or appended metadata, no re-encoding, no mutation). If a store performs
// internal transforms (e.g. compression), they MUST be fully reversed so the
// bytes returned by Get are identical to the bytes given to Put.
//
// Keys arriving here are physical keys: the cache layer has already applied
// its key transforms, so stores may use them verbatim (e.g. as file names).
package store

import "context"

// Store is a minimal byte store. Absence is a normal state, not an error:
// Get reports a miss as (nil, false, nil).
type Store interface {
	// Put stores value under key, replacing any previous bytes. A nil value
	// deletes the key instead and reports whether a value was deleted;
	// otherwise the result reports whether the write succeeded.
	Put(ctx context.Context, key string, value []byte) (bool, error)

	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Remove deletes key and reports whether a value was actually deleted.
	Remove(ctx context.Context, key string) (bool, error)

	// Contains reports whether key holds a value.
	Contains(ctx context.Context, key string) (bool, error)

	// Close releases resources.
	Close(ctx context.Context) error
}
