package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for storing dataset files.
//
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// Create creates a blob for streaming writes. The blob becomes visible
	// when the returned WritableBlob is closed.
	Create(ctx context.Context, name string) (WritableBlob, error)

	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the sorted names of all blobs starting with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer

	// ReadAt reads len(p) bytes starting at off. It follows io.ReaderAt
	// semantics for short reads.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)

	// ReadRange returns a reader for length bytes starting at off. The
	// range is clipped to the end of the blob.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)

	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a blob being written.
type WritableBlob interface {
	io.Writer
	io.Closer

	// Sync flushes buffered data to stable storage where the backend
	// supports it.
	Sync() error
}

// ReadAll opens name and returns a reader over the whole blob. Closing the
// reader closes the blob.
func ReadAll(ctx context.Context, store BlobStore, name string) (io.ReadCloser, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	if b.Size() == 0 {
		_ = b.Close()
		return io.NopCloser(eofReader{}), nil
	}

	rc, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	return &blobReader{ReadCloser: rc, blob: b}, nil
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

type blobReader struct {
	io.ReadCloser
	blob Blob
}

func (r *blobReader) Close() error {
	err := r.ReadCloser.Close()
	if cerr := r.blob.Close(); err == nil {
		err = cerr
	}
	return err
}
