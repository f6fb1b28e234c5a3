// Package blobstore provides whole-file blob storage for persisted index
// caches.
//
// Store is the interface the cache layer writes through. Built-in
// implementations:
//
//   - LocalStore: local filesystem with atomic rename writes
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible object stores
//
// Custom backends implement the four-method Store interface; there is no
// streaming or partial-read surface because cache files are small and
// always handled in full.
package blobstore
