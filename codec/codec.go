// Package codec converts cache values to and from the bytes a store holds.
package codec

// Codec encodes/decodes values V to []byte for storage.
//
// An encoding of zero length is rejected by the cache layer: an empty
// payload is indistinguishable from an absent value on read.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
