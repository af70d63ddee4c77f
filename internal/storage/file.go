package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tasklist/internal/errors"
)

// File stores each key as <dir>/<key>.json. Writes go to a temp file that is
// renamed over the target so a crash never leaves a half-written slot.
type File struct {
	dir   string
	perms os.FileMode
}

// NewFile creates the directory if needed and returns a file-backed storage.
func NewFile(dir string, perms os.FileMode) (*File, error) {
	if perms == 0 {
		perms = 0755
	}
	if err := os.MkdirAll(dir, perms); err != nil {
		return nil, errors.NewStorageError("create storage directory", err)
	}
	return &File{dir: dir, perms: perms}, nil
}

// Path returns the file backing key.
func (f *File) Path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", errors.NewInvalidInputError("key", key, "must be a plain file name")
	}
	return filepath.Join(f.dir, key+".json"), nil
}

// Get reads the slot file for key.
func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewSlotError("read slot", key, err)
	}
	path, err := f.Path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("slot", key)
		}
		return nil, errors.NewSlotError("read slot", key, err)
	}
	return data, nil
}

// Put atomically replaces the slot file for key.
func (f *File) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.NewSlotError("write slot", key, err)
	}
	path, err := f.Path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, fmt.Sprintf(".%s-*.tmp", key))
	if err != nil {
		return errors.NewSlotError("create temp file", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return errors.NewSlotError("write slot", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.NewSlotError("sync slot", key, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewSlotError("close slot", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.NewSlotError("replace slot", key, err)
	}
	return nil
}

// Close is a no-op.
func (f *File) Close() error {
	return nil
}
