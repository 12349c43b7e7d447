// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable local storage the cart is persisted to: a plain
// string-keyed get/set/remove with no atomicity across keys. It is the
// device-storage equivalent for a stateless deployment.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
