package wire

import (
	"bytes"
	"errors"
	"testing"
)

func mustSplit(t *testing.T, b []byte) ([]byte, byte) {
	t.Helper()
	p, tag, err := Split(b)
	if err != nil {
		t.Fatalf("Split error: %v", err)
	}
	return p, tag
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		payload []byte
		tag     byte
	}{
		{nil, TagBytes},
		{[]byte("hello"), TagBytes},
		{[]byte(`{"a":1}`), TagJSON},
		{[]byte{0, 1, TagJSON, 3}, TagBytes}, // tag values inside the body are not special
	}
	for _, tc := range cases {
		enc := Append(tc.payload, tc.tag)
		if len(enc) != len(tc.payload)+1 {
			t.Fatalf("framed length = %d, want %d", len(enc), len(tc.payload)+1)
		}
		p, tag := mustSplit(t, enc)
		if tag != tc.tag {
			t.Fatalf("tag mismatch: got %d want %d", tag, tc.tag)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestAppendDoesNotMutateInput(t *testing.T) {
	payload := []byte("abc")
	_ = Append(payload, TagJSON)
	if !bytes.Equal(payload, []byte("abc")) {
		t.Fatalf("input mutated: %q", payload)
	}
}

func TestSplitEmpty(t *testing.T) {
	if _, _, err := Split(nil); !errors.Is(err, ErrTruncated) {
		t.Fatalf("Split(nil) err = %v, want ErrTruncated", err)
	}
	if _, _, err := Split([]byte{}); !errors.Is(err, ErrTruncated) {
		t.Fatalf("Split(empty) err = %v, want ErrTruncated", err)
	}
}

func TestSplitSingleByteIsBareTag(t *testing.T) {
	p, tag := mustSplit(t, []byte{TagJSON})
	if len(p) != 0 || tag != TagJSON {
		t.Fatalf("Split single byte: payload=%x tag=%d", p, tag)
	}
}
