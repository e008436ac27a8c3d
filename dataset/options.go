package dataset

import (
	"context"
	"io"

	"github.com/hupe1980/foodidx"
	"golang.org/x/time/rate"
)

// DefaultConcurrency is the number of blobs LoadAll fetches in parallel.
const DefaultConcurrency = 4

// Options configures loading and saving.
type Options struct {
	// ReadLimit caps blob reads in bytes per second. 0 disables the limit.
	ReadLimit int

	// Concurrency bounds parallel blob fetches in LoadAll.
	Concurrency int

	// Compression overrides detection from the blob name.
	Compression *Compression

	// Attributes are recognized when reading and written when saving.
	// Defaults to the index attributes on load and model.Attributes on save.
	Attributes []string

	// Logger receives load and export events. Load defaults to the index
	// logger, Save to a no-op logger.
	Logger *foodidx.Logger
}

// WithReadLimit throttles blob reads to bytesPerSec.
func WithReadLimit(bytesPerSec int) func(*Options) {
	return func(o *Options) { o.ReadLimit = bytesPerSec }
}

// WithConcurrency sets how many blobs LoadAll fetches in parallel.
func WithConcurrency(n int) func(*Options) {
	return func(o *Options) { o.Concurrency = n }
}

// WithCompression forces c instead of detecting it from the name.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) { o.Compression = &c }
}

// WithAttributes sets the recognized or written attributes.
func WithAttributes(attrs ...string) func(*Options) {
	return func(o *Options) { o.Attributes = attrs }
}

// WithLogger sets the logger.
func WithLogger(l *foodidx.Logger) func(*Options) {
	return func(o *Options) { o.Logger = l }
}

func applyOptions(optFns []func(*Options)) Options {
	o := Options{Concurrency: DefaultConcurrency}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.Concurrency <= 0 {
		o.Concurrency = DefaultConcurrency
	}
	return o
}

func (o Options) compression(name string) Compression {
	if o.Compression != nil {
		return *o.Compression
	}
	return CompressionFromName(name)
}

func (o Options) limiter() *rate.Limiter {
	if o.ReadLimit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(o.ReadLimit), o.ReadLimit)
}

// throttledReader waits on a shared limiter for every chunk it returns.
type throttledReader struct {
	ctx context.Context
	r   io.Reader
	lim *rate.Limiter
}

func (t *throttledReader) Read(p []byte) (int, error) {
	if b := t.lim.Burst(); len(p) > b {
		p = p[:b]
	}
	n, err := t.r.Read(p)
	if n > 0 {
		if werr := t.lim.WaitN(t.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}

// countingReader counts bytes read from the underlying reader.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
