package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/foodidx/blobstore"
)

// Client is the subset of the S3 API used by Store. *s3.Client satisfies it.
type Client interface {
	manager.UploadAPIClient
	s3.HeadObjectAPIClient
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Options configures New.
type Options struct {
	// Prefix is prepended to all keys (e.g. "datasets/").
	Prefix string

	// Region overrides the region from the shared AWS configuration.
	Region string

	// Endpoint points the client at an S3-compatible service.
	// Path-style addressing is enabled when set.
	Endpoint string

	// PartSize is the multipart upload part size. Default: 8MB.
	PartSize int64

	// Concurrency is the number of concurrent part uploads. Default: 5.
	Concurrency int
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) { o.Prefix = prefix }
}

// WithRegion sets the AWS region.
func WithRegion(region string) func(*Options) {
	return func(o *Options) { o.Region = region }
}

// WithEndpoint sets a custom endpoint URL.
func WithEndpoint(endpoint string) func(*Options) {
	return func(o *Options) { o.Endpoint = endpoint }
}

// WithUploadParts configures multipart uploads.
func WithUploadParts(partSize int64, concurrency int) func(*Options) {
	return func(o *Options) {
		o.PartSize = partSize
		o.Concurrency = concurrency
	}
}

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client   Client
	bucket   string
	prefix   string
	uploader *manager.Uploader
}

// New loads the default AWS configuration and creates a Store for bucket.
func New(ctx context.Context, bucket string, optFns ...func(*Options)) (*Store, error) {
	opts := Options{
		PartSize:    8 * 1024 * 1024,
		Concurrency: 5,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	var cfgOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(opts.Region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	s := NewStore(client, bucket, opts.Prefix)
	s.uploader = newUploader(client, opts.PartSize, opts.Concurrency)
	return s, nil
}

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "my-data/").
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client:   client,
		bucket:   bucket,
		prefix:   rootPrefix,
		uploader: newUploader(client, 0, 0),
	}
}

func newUploader(client Client, partSize int64, concurrency int) *manager.Uploader {
	return manager.NewUploader(client, func(u *manager.Uploader) {
		if partSize > 0 {
			u.PartSize = partSize
		}
		if concurrency > 0 {
			u.Concurrency = concurrency
		}
	})
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

// Open opens a blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, blobstore.ErrNotFound
		}
		return nil, err
	}

	return &s3Blob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   aws.ToInt64(head.ContentLength),
	}, nil
}

// Put writes a blob atomically.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	return err
}

// Create creates a blob for streaming writes. The upload runs in the
// background and completes when the returned blob is closed.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	key := s.key(name)
	pr, pw := io.Pipe()

	blob := &s3WritableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	go func() {
		_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
			Body:   pr,
		})
		// Unblock writers if the upload fails early.
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil && isNotFound(err) {
		return nil
	}
	return err
}

// List returns all blob names with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	fullPrefix := s.key(prefix)
	if strings.HasSuffix(prefix, "/") {
		fullPrefix += "/"
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(fullPrefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			name = strings.TrimPrefix(name, "/")
			if name != "" {
				keys = append(keys, name)
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	return errors.As(err, &nsk)
}

// s3Blob implements blobstore.Blob.
type s3Blob struct {
	client Client
	bucket string
	key    string
	size   int64
}

func (b *s3Blob) Close() error {
	return nil
}

func (b *s3Blob) Size() int64 {
	return b.size
}

func (b *s3Blob) get(ctx context.Context, off, end int64) (io.ReadCloser, error) {
	resp, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", off, end)),
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// ReadAt reads len(p) bytes starting at offset off.
func (b *s3Blob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if off >= b.size {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	end := min(off+int64(len(p)), b.size) - 1

	body, err := b.get(ctx, off, end)
	if err != nil {
		return 0, err
	}
	defer func() { _ = body.Close() }()

	want := int(end - off + 1)
	n, err := io.ReadFull(body, p[:want])
	if err != nil {
		return n, err
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// ReadRange returns a reader for a range of bytes.
func (b *s3Blob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off >= b.size {
		return nil, io.EOF
	}
	end := min(off+length, b.size) - 1
	return b.get(ctx, off, end)
}

// s3WritableBlob implements blobstore.WritableBlob.
type s3WritableBlob struct {
	pw     *io.PipeWriter
	done   chan error
	closed atomic.Bool
}

func (b *s3WritableBlob) Write(p []byte) (int, error) {
	if b.closed.Load() {
		return 0, io.ErrClosedPipe
	}
	return b.pw.Write(p)
}

func (b *s3WritableBlob) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return io.ErrClosedPipe
	}
	if err := b.pw.Close(); err != nil {
		return err
	}
	return <-b.done
}

// Sync is a no-op for S3 uploads.
// The upload is only finalized when Close() is called.
func (b *s3WritableBlob) Sync() error {
	return nil
}
