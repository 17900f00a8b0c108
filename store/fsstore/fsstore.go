// Package fsstore implements the default file-backed store. Every physical
// key maps to one file inside a configured directory; the per-store key
// transform (MD5 hex by default) keeps arbitrary keys safe as file names.
package fsstore

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/unkn0wn-root/typecache/keys"
	st "github.com/unkn0wn-root/typecache/store"
)

type Store struct {
	fs        billy.Filesystem
	transform keys.Transform
	mode      os.FileMode
}

var _ st.Store = (*Store)(nil)

type Options struct {
	// Dir is the directory holding one file per key. Created (with parents)
	// by New when missing. Required unless Filesystem is set.
	Dir string

	// Filesystem overrides the backend; files live at its root. Use memfs
	// for tests or billy chroots for sandboxing. When set, Dir is ignored.
	Filesystem billy.Filesystem

	// Transform maps physical keys to file names. Defaults to keys.Hash(nil)
	// (MD5 hex). Use keys.Chain or an identity transform only when every key
	// is already a safe file name.
	Transform keys.Transform

	// FileMode for created files. Defaults to 0o644.
	FileMode os.FileMode
}

// New builds a file-backed store. Directory creation is explicit and loud:
// a Dir that cannot be created fails here rather than on first write.
func New(opts Options) (*Store, error) {
	fs := opts.Filesystem
	if fs == nil {
		if opts.Dir == "" {
			return nil, errors.New("fsstore: dir is required")
		}
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, err
		}
		fs = osfs.New(opts.Dir)
	}

	t := opts.Transform
	if t == nil {
		t = keys.Hash(nil)
	}

	mode := opts.FileMode
	if mode == 0 {
		mode = 0o644
	}

	return &Store{fs: fs, transform: t, mode: mode}, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) (bool, error) {
	if value == nil {
		return s.Remove(ctx, key)
	}
	// billy creates missing parent directories on write, so a directory
	// removed behind our back heals on the next Put.
	if err := util.WriteFile(s.fs, s.transform(key), value, s.mode); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	f, err := s.fs.Open(s.transform(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() { _ = f.Close() }()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) Remove(_ context.Context, key string) (bool, error) {
	err := s.fs.Remove(s.transform(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Store) Contains(_ context.Context, key string) (bool, error) {
	_, err := s.fs.Stat(s.transform(key))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *Store) Close(_ context.Context) error { return nil }
