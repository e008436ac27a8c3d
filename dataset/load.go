package dataset

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hupe1980/foodidx"
	"github.com/hupe1980/foodidx/blobstore"
	"github.com/hupe1980/foodidx/model"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// LoadStats summarizes a load.
type LoadStats struct {
	Blobs   int   `json:"blobs"`
	Records int   `json:"records"`
	Skipped int   `json:"skipped"`
	Bytes   int64 `json:"bytes"`
}

func (s *LoadStats) add(o LoadStats) {
	s.Blobs += o.Blobs
	s.Records += o.Records
	s.Skipped += o.Skipped
	s.Bytes += o.Bytes
}

// Load parses a plain record stream and adds every record to idx.
func Load(r io.Reader, idx *foodidx.Index, optFns ...func(*Options)) (LoadStats, error) {
	o := applyOptions(optFns)

	recs, stats, err := parse(r, o.attributes(idx))
	if err != nil {
		return stats, err
	}
	for _, rec := range recs {
		idx.Add(rec)
	}
	return stats, nil
}

// LoadBlob reads the blob name from store and adds its records to idx.
func LoadBlob(ctx context.Context, store blobstore.BlobStore, name string, idx *foodidx.Index, optFns ...func(*Options)) (LoadStats, error) {
	o := applyOptions(optFns)
	logger := o.logger(idx)

	recs, stats, err := fetch(ctx, store, name, o, o.attributes(idx), o.limiter())
	if err != nil {
		logger.LogLoad(ctx, name, 0, stats.Skipped, err)
		return stats, err
	}
	for _, rec := range recs {
		idx.Add(rec)
	}

	logger.LogLoad(ctx, name, stats.Records, stats.Skipped, nil)
	return stats, nil
}

// LoadAll loads every blob whose name starts with prefix. Blobs are fetched
// and parsed concurrently; records are added to idx on the calling
// goroutine in blob name order. If any blob fails nothing is added.
func LoadAll(ctx context.Context, store blobstore.BlobStore, prefix string, idx *foodidx.Index, optFns ...func(*Options)) (LoadStats, error) {
	o := applyOptions(optFns)
	logger := o.logger(idx)

	names, err := store.List(ctx, prefix)
	if err != nil {
		return LoadStats{}, fmt.Errorf("dataset: list %q: %w", prefix, err)
	}
	names = slices.DeleteFunc(names, func(n string) bool { return !IsDatasetName(n) })

	attrs := o.attributes(idx)
	lim := o.limiter()
	results := make([][]*model.Record, len(names))
	perBlob := make([]LoadStats, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, name := range names {
		g.Go(func() error {
			recs, stats, err := fetch(gctx, store, name, o, attrs, lim)
			if err != nil {
				return err
			}
			results[i] = recs
			perBlob[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.LogLoad(ctx, prefix, 0, 0, err)
		return LoadStats{}, err
	}

	var total LoadStats
	for i, recs := range results {
		for _, rec := range recs {
			idx.Add(rec)
		}
		logger.LogLoad(ctx, names[i], perBlob[i].Records, perBlob[i].Skipped, nil)
		total.add(perBlob[i])
	}
	return total, nil
}

func fetch(ctx context.Context, store blobstore.BlobStore, name string, o Options, attrs []string, lim *rate.Limiter) ([]*model.Record, LoadStats, error) {
	rc, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("dataset: open %q: %w", name, err)
	}
	defer func() { _ = rc.Close() }()

	counter := &countingReader{r: rc}
	var src io.Reader = counter
	if lim != nil {
		src = &throttledReader{ctx: ctx, r: counter, lim: lim}
	}

	dr, err := NewCompressedReader(src, o.compression(name))
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("dataset: %q: %w", name, err)
	}
	defer func() { _ = dr.Close() }()

	recs, stats, err := parse(dr, attrs)
	stats.Blobs = 1
	stats.Bytes = counter.n
	if err != nil {
		return nil, stats, fmt.Errorf("dataset: read %q: %w", name, err)
	}
	return recs, stats, nil
}

func parse(r io.Reader, attrs []string) ([]*model.Record, LoadStats, error) {
	rd := NewReader(r, attrs...)
	recs, err := rd.ReadAll()
	stats := LoadStats{Records: len(recs), Skipped: rd.Skipped()}
	return recs, stats, err
}

func (o Options) attributes(idx *foodidx.Index) []string {
	if len(o.Attributes) > 0 {
		return o.Attributes
	}
	if idx != nil {
		return idx.Attributes()
	}
	return model.Attributes()
}

func (o Options) logger(idx *foodidx.Index) *foodidx.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	if idx != nil {
		return idx.Logger()
	}
	return foodidx.NoopLogger()
}

// IsDatasetName reports whether name looks like a dataset blob, ignoring
// hidden files.
func IsDatasetName(name string) bool {
	base := name[strings.LastIndex(name, "/")+1:]
	return base != "" && !strings.HasPrefix(base, ".")
}
