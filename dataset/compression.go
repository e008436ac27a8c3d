package dataset

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the stream compression of a dataset blob.
type Compression uint8

const (
	// CompressionNone stores plain text.
	CompressionNone Compression = 0
	// CompressionZstd uses zstd frames (better ratio, good for archives).
	CompressionZstd Compression = 1
	// CompressionLZ4 uses LZ4 frames (fast, good for hot data).
	CompressionLZ4 Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// CompressionFromName picks the compression from a blob or file name
// extension.
func CompressionFromName(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// NewCompressedReader returns a reader that decompresses r.
func NewCompressedReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("dataset: unsupported %s", c)
	}
}

// NewCompressedWriter returns a writer that compresses into w. Close must
// be called to flush the final frame; it does not close w.
func NewCompressedWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		return enc, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("dataset: unsupported %s", c)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
