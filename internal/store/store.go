package store

import (
	"context"
)

// Storage is a flat string-keyed store, the persistent backing for a task
// list snapshot. Values are opaque strings.
type Storage interface {
	// GetItem returns the value stored under key and whether it exists.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItems writes every entry in one atomic operation.
	SetItems(ctx context.Context, items map[string]string) error

	// RemoveItems deletes the given keys in one atomic operation.
	// Missing keys are ignored.
	RemoveItems(ctx context.Context, keys ...string) error

	// Lifecycle
	Close() error
}
