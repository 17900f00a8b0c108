// Package wire frames object-cache payloads. The format is the encoded
// payload followed by exactly one trailing tag byte identifying the encoding
// that produced it. There is no header; a payload shorter than one byte is
// corrupt.
package wire

import "errors"

const (
	// TagBytes marks a payload produced by an object's own byte encoding.
	TagBytes byte = 0
	// TagJSON marks a payload holding a JSON object (string-keyed map).
	TagJSON byte = 1
)

// ErrTruncated reports a framed payload too short to carry a tag byte.
var ErrTruncated = errors.New("typecache: truncated object payload")

// Append frames payload with the trailing tag. The input slice is not
// mutated.
func Append(payload []byte, tag byte) []byte {
	out := make([]byte, 0, len(payload)+1)
	out = append(out, payload...)
	return append(out, tag)
}

// Split separates a framed payload into its encoded body and tag byte.
func Split(b []byte) (payload []byte, tag byte, err error) {
	if len(b) < 1 {
		return nil, 0, ErrTruncated
	}
	return b[:len(b)-1], b[len(b)-1], nil
}
