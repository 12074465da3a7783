package storage

import (
	"context"
	"errors"
)

// KeyValueStore is the durable byte store the task collections are mirrored
// into. Values are opaque to the store.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte) error
}

var ErrKeyNotFound = errors.New("key not found")
