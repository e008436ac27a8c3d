package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/hupe1980/foodidx/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures New.
type Options struct {
	// Prefix is prepended to all keys (e.g. "datasets/").
	Prefix string

	// AccessKey and SecretKey select static credentials. When empty the
	// MINIO_ACCESS_KEY/MINIO_SECRET_KEY and AWS_* environment variables
	// are used.
	AccessKey string
	SecretKey string

	// Secure enables HTTPS.
	Secure bool

	// Region is optional.
	Region string
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) { o.Prefix = prefix }
}

// WithStaticCredentials sets an access key pair.
func WithStaticCredentials(accessKey, secretKey string) func(*Options) {
	return func(o *Options) {
		o.AccessKey = accessKey
		o.SecretKey = secretKey
	}
}

// WithSecure enables or disables HTTPS.
func WithSecure(secure bool) func(*Options) {
	return func(o *Options) { o.Secure = secure }
}

// WithRegion sets the bucket region.
func WithRegion(region string) func(*Options) {
	return func(o *Options) { o.Region = region }
}

// Store implements blobstore.BlobStore for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// New creates a client for endpoint (host:port) and wraps it in a Store.
func New(endpoint, bucket string, optFns ...func(*Options)) (*Store, error) {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  newCredentials(opts),
		Secure: opts.Secure,
		Region: opts.Region,
	})
	if err != nil {
		return nil, err
	}
	return NewStore(client, bucket, opts.Prefix), nil
}

func newCredentials(opts Options) *credentials.Credentials {
	if opts.AccessKey != "" {
		return credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, "")
	}
	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvMinio{},
		&credentials.EnvAWS{},
	})
}

// NewStore creates a new MinIO blob store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "datasets/").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s *Store) listPrefix(prefix string) string {
	full := s.key(prefix)
	if strings.HasSuffix(prefix, "/") {
		full += "/"
	}
	return full
}

func (s *Store) name(key string) string {
	return strings.TrimPrefix(strings.TrimPrefix(key, s.prefix), "/")
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

// Open opens an existing blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return &minioBlob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   info.Size,
	}, nil
}

// Put writes a blob atomically.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.key(name), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	return err
}

// Create creates a new blob for streaming writes.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	blob := &minioWritableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	go func() {
		_, err := s.client.PutObject(ctx, s.bucket, key, pr, -1, minio.PutObjectOptions{})
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := s.client.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{})
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

// List returns all blob names with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.listPrefix(prefix),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if name := s.name(obj.Key); name != "" {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// minioBlob implements blobstore.Blob for MinIO.
type minioBlob struct {
	client *minio.Client
	bucket string
	key    string
	size   int64
}

func (b *minioBlob) Size() int64 {
	return b.size
}

func (b *minioBlob) get(ctx context.Context, off, end int64) (*minio.Object, error) {
	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, end); err != nil {
		return nil, err
	}
	return b.client.GetObject(ctx, b.bucket, b.key, opts)
}

func (b *minioBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	end := min(off+int64(len(p)), b.size) - 1

	obj, err := b.get(ctx, off, end)
	if err != nil {
		return 0, err
	}
	defer func() { _ = obj.Close() }()

	n, err := io.ReadFull(obj, p[:end-off+1])
	if err != nil {
		return n, err
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *minioBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off >= b.size {
		return nil, io.EOF
	}
	obj, err := b.get(ctx, off, min(off+length, b.size)-1)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (b *minioBlob) Close() error {
	return nil
}

// minioWritableBlob implements blobstore.WritableBlob for MinIO.
type minioWritableBlob struct {
	pw       *io.PipeWriter
	done     chan error
	finished atomic.Bool
}

func (b *minioWritableBlob) Write(p []byte) (int, error) {
	return b.pw.Write(p)
}

func (b *minioWritableBlob) Close() error {
	if !b.finished.CompareAndSwap(false, true) {
		return errors.New("already closed")
	}
	if err := b.pw.Close(); err != nil {
		return err
	}
	return <-b.done
}

func (b *minioWritableBlob) Sync() error {
	return nil // Streaming upload, no sync needed
}
