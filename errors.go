package typecache

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotConfigured is returned when a typed cache is requested from a
	// Registry before Configure has been called.
	ErrNotConfigured = errors.New("typecache: registry is not configured")

	// ErrAlreadyConfigured is returned by Configure on a second attempt.
	ErrAlreadyConfigured = errors.New("typecache: registry is already configured")

	// ErrMissingType is returned when an object cache is requested with an
	// interface type parameter instead of a concrete object type.
	ErrMissingType = errors.New("typecache: object cache requires a concrete type")

	// ErrEmptyValue is returned by Put when the value encodes to zero bytes.
	// An empty payload would read back as a miss, so it is rejected up front.
	ErrEmptyValue = errors.New("typecache: value encoded to zero bytes")

	// ErrUnsupportedObject is returned when an object implements neither
	// cache encoding, or its own encoding method produced nothing.
	ErrUnsupportedObject = errors.New("typecache: object implements no cache encoding")

	// ErrNoConverter is returned on decode when the payload's tag demands a
	// converter that was not configured.
	ErrNoConverter = errors.New("typecache: no converter configured for encoding")
)

// UnknownTagError reports an object payload whose trailing tag byte is not a
// known encoding tag.
type UnknownTagError struct {
	Tag byte
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("typecache: unknown encoding tag %d", e.Tag)
}

// TypeMismatchError reports a converter that returned an instance of a type
// other than the one requested.
type TypeMismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("typecache: converter returned %v, want %v", e.Got, e.Want)
}

// StoreError wraps a failure of the underlying byte store. Op is the cache
// operation ("put", "get", "remove", "contains"); Key is the logical key.
type StoreError struct {
	Op  string
	Key string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("typecache: store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
