// Package keys derives physical store keys from logical cache keys.
//
// Two transforms compose the pipeline: Prefix gives every typed cache its
// own namespace, and Hash turns arbitrary caller keys into fixed-shape
// identifiers that are safe for any storage medium (e.g. file names). The
// two stay independently substitutable: swapping a store's hash for identity
// storage must not touch cache-type prefixes, and vice versa.
package keys

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Transform maps a logical key to a physical key. Implementations must be
// total and deterministic: the same input always yields the same output,
// and no input fails.
type Transform func(key string) string

// Digest maps arbitrary bytes to a fixed-length digest. Injectable so the
// hashing primitive can be swapped without touching the transform pipeline.
type Digest func(b []byte) []byte

// MD5 is the default digest: a 128-bit cryptographic hash.
func MD5(b []byte) []byte {
	sum := md5.Sum(b)
	return sum[:]
}

// XXH64 digests with xxHash (64-bit, big endian). Much faster than MD5 but
// not cryptographic; fine when keys are trusted and only need fixed shape.
func XXH64(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], xxhash.Sum64(b))
	return out[:]
}

// Hash returns a Transform rendering d(key) as lowercase hex. A nil d
// selects MD5.
func Hash(d Digest) Transform {
	if d == nil {
		d = MD5
	}
	return func(key string) string {
		return hex.EncodeToString(d([]byte(key)))
	}
}

// Prefix returns a Transform that prepends prefix and leaves the key
// otherwise unchanged.
func Prefix(prefix string) Transform {
	return func(key string) string {
		return prefix + key
	}
}

// Chain composes transforms left to right: Chain(a, b)(k) == b(a(k)).
func Chain(ts ...Transform) Transform {
	return func(key string) string {
		for _, t := range ts {
			key = t(key)
		}
		return key
	}
}
