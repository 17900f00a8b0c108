package fsstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"

	"github.com/unkn0wn-root/typecache/keys"
)

func newMemStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(Options{Filesystem: memfs.New()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestPutGetRemoveContains(t *testing.T) {
	ctx := context.Background()
	s := newMemStore(t)

	if _, ok, err := s.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("Get on empty store: ok=%v err=%v", ok, err)
	}
	if ok, err := s.Contains(ctx, "k"); err != nil || ok {
		t.Fatalf("Contains on empty store: ok=%v err=%v", ok, err)
	}

	if ok, err := s.Put(ctx, "k", []byte("payload")); err != nil || !ok {
		t.Fatalf("Put: ok=%v err=%v", ok, err)
	}
	b, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || !bytes.Equal(b, []byte("payload")) {
		t.Fatalf("Get after put: %q ok=%v err=%v", b, ok, err)
	}
	if ok, err := s.Contains(ctx, "k"); err != nil || !ok {
		t.Fatalf("Contains after put: ok=%v err=%v", ok, err)
	}

	// overwrite
	if _, err := s.Put(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	if b, _, _ := s.Get(ctx, "k"); !bytes.Equal(b, []byte("v2")) {
		t.Fatalf("Get after overwrite: %q", b)
	}

	if ok, err := s.Remove(ctx, "k"); err != nil || !ok {
		t.Fatalf("Remove: ok=%v err=%v", ok, err)
	}
	if ok, err := s.Remove(ctx, "k"); err != nil || ok {
		t.Fatalf("Remove twice: ok=%v err=%v", ok, err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("Get after remove should miss")
	}
}

func TestPutNilDeletes(t *testing.T) {
	ctx := context.Background()
	s := newMemStore(t)

	if _, err := s.Put(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if ok, err := s.Put(ctx, "k", nil); err != nil || !ok {
		t.Fatalf("Put(nil) should delete and report true: ok=%v err=%v", ok, err)
	}
	if ok, err := s.Put(ctx, "k", nil); err != nil || ok {
		t.Fatalf("Put(nil) on absent key: ok=%v err=%v", ok, err)
	}
}

// TestHashedFileNames ensures keys unsafe for file systems are stored under
// their hashed names.
func TestHashedFileNames(t *testing.T) {
	ctx := context.Background()
	fs := memfs.New()
	s, err := New(Options{Filesystem: fs})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	key := "weird/../key with spaces"
	if _, err := s.Put(ctx, key, []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := fs.Stat(keys.Hash(nil)(key)); err != nil {
		t.Fatalf("expected file under hashed name: %v", err)
	}
	if b, ok, err := s.Get(ctx, key); err != nil || !ok || string(b) != "v" {
		t.Fatalf("Get via unsafe key: %q ok=%v err=%v", b, ok, err)
	}
}

func TestCustomTransform(t *testing.T) {
	ctx := context.Background()
	fs := memfs.New()
	s, err := New(Options{
		Filesystem: fs,
		Transform:  func(k string) string { return k + ".cache" },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := s.Put(ctx, "greeting", []byte("hi")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := fs.Stat("greeting.cache"); err != nil {
		t.Fatalf("expected file greeting.cache: %v", err)
	}
}

func TestNewRequiresDirOrFilesystem(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatalf("expected error when neither Dir nor Filesystem is set")
	}
}

func TestNewCreatesDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir() + "/nested/cache"
	s, err := New(Options{Dir: dir})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ok, err := s.Put(ctx, "k", []byte("v")); err != nil || !ok {
		t.Fatalf("Put on fresh dir: ok=%v err=%v", ok, err)
	}
	if b, ok, err := s.Get(ctx, "k"); err != nil || !ok || string(b) != "v" {
		t.Fatalf("Get: %q ok=%v err=%v", b, ok, err)
	}
}
