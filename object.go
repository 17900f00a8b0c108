package typecache

import (
	"encoding/json"
	"fmt"
	"reflect"

	c "github.com/unkn0wn-root/typecache/codec"
	"github.com/unkn0wn-root/typecache/internal/wire"
)

// ByteEncodable is implemented by objects that serialize themselves to raw
// bytes. The result must be non-empty.
type ByteEncodable interface {
	CacheBytes() ([]byte, error)
}

// JSONEncodable is implemented by objects that serialize themselves to a
// string-keyed map of JSON-compatible values (order-irrelevant). The result
// must not be nil.
type JSONEncodable interface {
	CacheJSON() (map[string]any, error)
}

// ByteObjectConverter reconstructs an object of the target type from the raw
// bytes it once produced via CacheBytes.
type ByteObjectConverter interface {
	ObjectFromBytes(data []byte, target reflect.Type) (any, error)
}

// JSONObjectConverter reconstructs an object of the target type from the map
// it once produced via CacheJSON.
type JSONObjectConverter interface {
	ObjectFromMap(m map[string]any, target reflect.Type) (any, error)
}

// objectCodec serializes cacheable objects: the payload produced by the
// object's own encoding capability, framed with one trailing tag byte.
// Decoding dispatches on the tag to the matching converter, then verifies
// the result is exactly T.
type objectCodec[T any] struct {
	target   reflect.Type
	byteConv ByteObjectConverter
	jsonConv JSONObjectConverter
}

var _ c.Codec[struct{}] = objectCodec[struct{}]{}

// targetOf resolves the reflect.Type for T without needing a value.
func targetOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// newObjectCodec rejects interface element types up front: decoding must
// know the one concrete type it is allowed to produce.
func newObjectCodec[T any](cfg *config) (objectCodec[T], error) {
	t := targetOf[T]()
	if t.Kind() == reflect.Interface {
		return objectCodec[T]{}, fmt.Errorf("%w: %v is an interface", ErrMissingType, t)
	}
	return objectCodec[T]{
		target:   t,
		byteConv: cfg.byteConv,
		jsonConv: cfg.jsonConv,
	}, nil
}

func (c objectCodec[T]) Encode(v T) ([]byte, error) {
	// byte encoding takes precedence when a type implements both
	switch enc := any(v).(type) {
	case ByteEncodable:
		b, err := enc.CacheBytes()
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			return nil, fmt.Errorf("%w: %v.CacheBytes returned no bytes", ErrUnsupportedObject, c.target)
		}
		return wire.Append(b, wire.TagBytes), nil

	case JSONEncodable:
		m, err := enc.CacheJSON()
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, fmt.Errorf("%w: %v.CacheJSON returned no map", ErrUnsupportedObject, c.target)
		}
		b, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		return wire.Append(b, wire.TagJSON), nil

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedObject, c.target)
	}
}

func (c objectCodec[T]) Decode(b []byte) (T, error) {
	var zero T

	payload, tag, err := wire.Split(b)
	if err != nil {
		return zero, err
	}

	var out any
	switch tag {
	case wire.TagBytes:
		if c.byteConv == nil {
			return zero, fmt.Errorf("%w: byte-encoded payload", ErrNoConverter)
		}
		out, err = c.byteConv.ObjectFromBytes(payload, c.target)

	case wire.TagJSON:
		if c.jsonConv == nil {
			return zero, fmt.Errorf("%w: json-encoded payload", ErrNoConverter)
		}
		var m map[string]any
		if err := json.Unmarshal(payload, &m); err != nil {
			return zero, err
		}
		out, err = c.jsonConv.ObjectFromMap(m, c.target)

	default:
		return zero, &UnknownTagError{Tag: tag}
	}
	if err != nil {
		return zero, err
	}

	// converters are trusted to build the object, not to pick its type
	v, ok := out.(T)
	if !ok {
		return zero, &TypeMismatchError{Want: c.target, Got: reflect.TypeOf(out)}
	}
	return v, nil
}
