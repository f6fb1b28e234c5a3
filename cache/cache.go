// Package cache persists built index tables so a corpus is only indexed
// once per machine. One cache file per index subset, columnar binary
// format, optional compression, CRC32-C integrity.
//
// There is no content staleness detection: a cache file is trusted until
// deleted or rebuilt. Corpora are versioned directories in practice, so
// in-place mutation is rare; Corpus.Rebuild is the escape hatch when it
// happens.
package cache

import (
	"context"
	"errors"
	"path"

	"github.com/dakoda-project/dakoda-go/blobstore"
	"github.com/dakoda-project/dakoda-go/index"
)

// FileExt is the cache file extension.
const FileExt = ".dki"

// IndexCache reads and writes index tables through a blob store.
type IndexCache struct {
	store       blobstore.Store
	prefix      string
	compression CompressionType
}

// New creates a cache writing under the given key prefix of store. For a
// local store the prefix is usually ".index" inside the corpus directory.
func New(store blobstore.Store, prefix string, compression CompressionType) *IndexCache {
	return &IndexCache{store: store, prefix: prefix, compression: compression}
}

func (c *IndexCache) key(subset string) string {
	return path.Join(c.prefix, subset+FileExt)
}

// IsCached reports whether a cache file exists for the subset. It does not
// validate the content; a corrupt file surfaces as ErrBadFormat on Read.
func (c *IndexCache) IsCached(ctx context.Context, subset string) (bool, error) {
	return c.store.Exists(ctx, c.key(subset))
}

// Write persists the table for the subset, unconditionally replacing any
// previous cache file.
func (c *IndexCache) Write(ctx context.Context, subset string, t *index.Table) error {
	data, err := EncodeTable(t, c.compression)
	if err != nil {
		return err
	}
	return c.store.Write(ctx, c.key(subset), data)
}

// Read loads the cached table for the subset. A missing file reports
// blobstore.ErrNotFound; a corrupt one ErrBadFormat.
func (c *IndexCache) Read(ctx context.Context, subset string) (*index.Table, error) {
	data, err := c.store.Read(ctx, c.key(subset))
	if err != nil {
		return nil, err
	}
	return DecodeTable(data)
}

// Invalidate removes the cache file for the subset.
func (c *IndexCache) Invalidate(ctx context.Context, subset string) error {
	err := c.store.Delete(ctx, c.key(subset))
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil
	}
	return err
}
