// Package snapshot persists the stock readings of the last completed
// run so the next run has something to diff against.
package snapshot

import (
	"context"
	"fmt"
)

// Store is the persistence layer for stock snapshots. A snapshot is
// the complete SKU to stock map of one run; Save always replaces the
// previous snapshot wholesale.
type Store interface {
	// Load returns the snapshot of the last completed run. A store
	// that has never been written returns an empty map, not an error.
	Load(ctx context.Context) (map[string]int, error)

	// Save atomically replaces the stored snapshot.
	Save(ctx context.Context, snap map[string]int) error

	// Close releases resources.
	Close() error
}

// StorageError reports a snapshot read or write failure.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("snapshot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
