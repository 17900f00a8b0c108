package codec

import "strconv"

// String is a trivial codec for Go string values. Encode converts to []byte
// and Decode converts back. By convention this assumes UTF-8 and performs no
// validation. Note that "" encodes to zero bytes and is therefore not
// cacheable.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }

// Int64 encodes integers as decimal text.
type Int64 struct{}

func (Int64) Encode(v int64) ([]byte, error) {
	return strconv.AppendInt(nil, v, 10), nil
}

func (Int64) Decode(b []byte) (int64, error) {
	return strconv.ParseInt(string(b), 10, 64)
}

// Float64 encodes floats as decimal text in Go's shortest 'g' form
// (strconv.FormatFloat(v, 'g', -1, 64)): the minimal representation that
// ParseFloat maps back to the exact same bits, so every finite float64
// round-trips exactly.
type Float64 struct{}

func (Float64) Encode(v float64) ([]byte, error) {
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (Float64) Decode(b []byte) (float64, error) {
	return strconv.ParseFloat(string(b), 64)
}
