// Package blobstore provides storage abstraction for foodidx dataset files.
//
// BlobStore is the interface for reading and writing data blobs. Datasets
// are small, append-free text files, so every backend treats a blob as an
// immutable unit that is replaced as a whole.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem with atomic replace on write
//   - MemoryStore: In-memory store for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible object stores
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)            // Open for reading
//	    Create(ctx, name) (WritableBlob, error)  // Create for writing
//	    Put(ctx, name, data) error               // Atomic write
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// For cloud backends, ReadRange should issue a single ranged GET so that
// sequential readers do not pay one request per ReadAt call.
package blobstore
