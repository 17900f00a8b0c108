package memstore

import (
	"bytes"
	"context"
	"testing"
)

func TestIdentityKeysAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()

	if ok, err := s.Put(ctx, "raw key", []byte("v")); err != nil || !ok {
		t.Fatalf("Put: ok=%v err=%v", ok, err)
	}
	// identity storage: the key is used verbatim
	if ok, _ := s.Contains(ctx, "raw key"); !ok {
		t.Fatalf("Contains miss for stored key")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}

	b, ok, err := s.Get(ctx, "raw key")
	if err != nil || !ok || !bytes.Equal(b, []byte("v")) {
		t.Fatalf("Get: %q ok=%v err=%v", b, ok, err)
	}

	if ok, err := s.Remove(ctx, "raw key"); err != nil || !ok {
		t.Fatalf("Remove: ok=%v err=%v", ok, err)
	}
	if ok, err := s.Remove(ctx, "raw key"); err != nil || ok {
		t.Fatalf("Remove twice: ok=%v err=%v", ok, err)
	}
}

func TestPutNilDeletes(t *testing.T) {
	ctx := context.Background()
	s := New()

	if ok, err := s.Put(ctx, "k", nil); err != nil || ok {
		t.Fatalf("Put(nil) on absent key: ok=%v err=%v", ok, err)
	}
	if _, err := s.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if ok, err := s.Put(ctx, "k", nil); err != nil || !ok {
		t.Fatalf("Put(nil) should delete: ok=%v err=%v", ok, err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d after delete, want 0", s.Len())
	}
}

func TestPutCopiesValue(t *testing.T) {
	ctx := context.Background()
	s := New()

	v := []byte("abc")
	if _, err := s.Put(ctx, "k", v); err != nil {
		t.Fatalf("Put: %v", err)
	}
	v[0] = 'x'
	b, _, _ := s.Get(ctx, "k")
	if !bytes.Equal(b, []byte("abc")) {
		t.Fatalf("stored bytes mutated by caller: %q", b)
	}
}
