package kvstore

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	gerrors "github.com/go-faster/errors"
)

// FileStore writes each key into its own file under a base directory. Writes
// go through a temp file and rename so that a crashed write never leaves a
// half-written blob behind the key.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, gerrors.Wrap(err, "create storage dir")
	}
	return &FileStore{dir: dir}, nil
}

// Keys may contain characters that are unsafe in file names.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, gerrors.Wrap(err, "read blob")
	}
	return data, true, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return gerrors.Wrap(err, "create temp blob")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return gerrors.Wrap(err, "write blob")
	}
	if err := tmp.Close(); err != nil {
		return gerrors.Wrap(err, "close blob")
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return gerrors.Wrap(err, "rename blob")
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
