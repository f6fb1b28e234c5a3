package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for whole-file blob storage. Index cache files
// are small and always read and written in full, so the surface is
// deliberately coarse: no partial reads, no streaming.
//
// Implementations must be safe for concurrent use.
type Store interface {
	// Read returns the full content of the named blob, or ErrNotFound.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the named blob with data. Writes are atomic where the
	// backend allows it: readers see either the old or the new content.
	Write(ctx context.Context, name string, data []byte) error
	// Exists reports whether the named blob exists.
	Exists(ctx context.Context, name string) (bool, error)
	// Delete removes the named blob. Deleting a missing blob is not an
	// error.
	Delete(ctx context.Context, name string) error
}
