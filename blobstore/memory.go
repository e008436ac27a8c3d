package blobstore

import (
	"bytes"
	"context"
	"io"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps dataset blobs in process memory. It is mostly useful in
// tests and for staging an export before it is copied elsewhere.
//
// Stored contents are immutable: Put and Close install a private copy, so
// open blobs keep seeing the version they were opened on.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	names []string // sorted keys of blobs
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Open returns a handle on the current contents of name.
func (m *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	m.mu.RLock()
	data, ok := m.blobs[name]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return &memoryBlob{r: bytes.NewReader(data), size: int64(len(data))}, nil
}

// Create buffers writes and installs the blob on Close.
func (m *MemoryStore) Create(_ context.Context, name string) (WritableBlob, error) {
	return &memoryWritableBlob{store: m, name: name}, nil
}

// Put stores a copy of data under name.
func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	m.install(name, bytes.Clone(data))
	return nil
}

// install takes ownership of data.
func (m *MemoryStore) install(name string, data []byte) {
	if data == nil {
		data = []byte{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.blobs[name]; !exists {
		i, _ := slices.BinarySearch(m.names, name)
		m.names = slices.Insert(m.names, i, name)
	}
	m.blobs[name] = data
}

// Delete removes name. Missing blobs are ignored.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.blobs[name]; !exists {
		return nil
	}
	delete(m.blobs, name)
	if i, found := slices.BinarySearch(m.names, name); found {
		m.names = slices.Delete(m.names, i, i+1)
	}
	return nil
}

// List returns the names starting with prefix in ascending order.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start, _ := slices.BinarySearch(m.names, prefix)
	end := start
	for end < len(m.names) && strings.HasPrefix(m.names[end], prefix) {
		end++
	}
	return slices.Clone(m.names[start:end]), nil
}

// Len returns the number of stored blobs.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.names)
}

type memoryBlob struct {
	r    *bytes.Reader
	size int64
}

func (b *memoryBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return b.r.ReadAt(p, off)
}

func (b *memoryBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	if off >= b.size {
		return nil, io.EOF
	}
	return io.NopCloser(io.NewSectionReader(b.r, off, min(length, b.size-off))), nil
}

func (b *memoryBlob) Size() int64 { return b.size }

func (b *memoryBlob) Close() error { return nil }

type memoryWritableBlob struct {
	store *MemoryStore
	name  string
	buf   bytes.Buffer
}

func (w *memoryWritableBlob) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *memoryWritableBlob) Sync() error { return nil }

// Close publishes the buffered bytes. The buffer is handed over without a
// copy since the writer is done with it.
func (w *memoryWritableBlob) Close() error {
	w.store.install(w.name, w.buf.Bytes())
	w.buf = bytes.Buffer{}
	return nil
}
