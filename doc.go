// Package typecache implements a typed, pluggable key-value cache. Callers
// store strings, numbers, codec-encoded values and polymorphic "cacheable
// objects" under string keys, backed by a swappable byte store (filesystem
// by default).
//
// Components:
//   - store.Store: raw byte store keyed by physical keys (filesystem, redis,
//     bigcache, ristretto, in-memory).
//   - keys.Transform: logical key -> physical key (hash for safe storage
//     identifiers, prefix for per-cache namespaces).
//   - codec.Codec[V]: (de)serializes V <-> []byte.
//   - Registry: configure-once factory handing out typed caches that share
//     one store and one converter pair.
//
// Keys:
//
//	StringCache:<key>          - string cache entries
//	IntCache:<key>             - int64 cache entries
//	FloatCache:<key>           - float64 cache entries
//	ObjectCache:<type>:<key>   - object cache entries (one namespace per type)
//
// Object payloads carry a single trailing tag byte (0 = byte-encoded,
// 1 = JSON-encoded); decoding dispatches on the tag to a caller-supplied
// converter and verifies the result is exactly the requested type.
//
// A zero-length payload is indistinguishable from an absent value on read,
// so Put rejects values that encode to zero bytes and Get treats empty
// stored bytes as a miss. There is no expiration, eviction or cross-process
// write arbitration; stores that evict do so on their own terms.
package typecache
