package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/foodidx"
	"github.com/hupe1980/foodidx/blobstore"
	"github.com/hupe1980/foodidx/model"
)

// Save writes records to w in the record file format.
func Save(w io.Writer, records []*model.Record, optFns ...func(*Options)) error {
	o := applyOptions(optFns)
	_, err := save(w, records, o.Attributes)
	return err
}

func save(w io.Writer, records []*model.Record, attrs []string) (int, error) {
	wr := NewWriter(w, attrs...)
	for _, rec := range records {
		if err := wr.Write(rec); err != nil {
			return wr.Count(), err
		}
	}
	return wr.Count(), wr.Flush()
}

// SaveBlob writes records to the blob name, compressed according to its
// extension. The blob is only replaced when every record was written.
func SaveBlob(ctx context.Context, store blobstore.BlobStore, name string, records []*model.Record, optFns ...func(*Options)) (err error) {
	o := applyOptions(optFns)
	logger := o.Logger
	if logger == nil {
		logger = foodidx.NoopLogger()
	}

	written := 0
	defer func() {
		logger.LogExport(ctx, name, written, err)
	}()

	var buf bufferWriter
	cw, err := NewCompressedWriter(&buf, o.compression(name))
	if err != nil {
		return fmt.Errorf("dataset: %q: %w", name, err)
	}

	written, err = save(cw, records, o.Attributes)
	if cerr := cw.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("dataset: write %q: %w", name, err)
	}

	if err := store.Put(ctx, name, buf.data); err != nil {
		return fmt.Errorf("dataset: put %q: %w", name, err)
	}
	return nil
}

// ExportIndex writes every record of idx, sorted by name, to the blob
// name using the index attributes and logger.
func ExportIndex(ctx context.Context, store blobstore.BlobStore, name string, idx *foodidx.Index, optFns ...func(*Options)) error {
	if idx == nil {
		return errors.New("dataset: nil index")
	}
	opts := append([]func(*Options){
		WithAttributes(idx.Attributes()...),
		WithLogger(idx.Logger()),
	}, optFns...)
	return SaveBlob(ctx, store, name, idx.All(), opts...)
}

type bufferWriter struct {
	data []byte
}

func (b *bufferWriter) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
