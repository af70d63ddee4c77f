// Package storage defines the key-value slot port that task collections are
// persisted through, plus the in-process backends.
package storage

import (
	"context"
)

// Storage reads and writes whole values under string keys. Get returns a
// not found *errors.AppError when the key has never been written.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
