package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/foodidx/blobstore"
	"github.com/hupe1980/foodidx/blobstore/minio"
	"github.com/hupe1980/foodidx/blobstore/s3"
)

// location is a parsed -data or export argument.
type location struct {
	store blobstore.BlobStore

	// path is a blob name when single is set, a listing prefix otherwise.
	path   string
	single bool
}

func parseLocation(ctx context.Context, raw string, minioSecure bool) (location, error) {
	switch {
	case strings.HasPrefix(raw, "s3://"):
		u, err := url.Parse(raw)
		if err != nil {
			return location{}, fmt.Errorf("invalid location %q: %w", raw, err)
		}
		if u.Host == "" {
			return location{}, fmt.Errorf("invalid location %q: missing bucket", raw)
		}
		store, err := s3.New(ctx, u.Host)
		if err != nil {
			return location{}, err
		}
		return location{store: store, path: strings.TrimPrefix(u.Path, "/")}, nil

	case strings.HasPrefix(raw, "minio://"):
		u, err := url.Parse(raw)
		if err != nil {
			return location{}, fmt.Errorf("invalid location %q: %w", raw, err)
		}
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return location{}, fmt.Errorf("invalid location %q: want minio://host/bucket/prefix", raw)
		}
		store, err := minio.New(u.Host, bucket, minio.WithSecure(minioSecure))
		if err != nil {
			return location{}, err
		}
		return location{store: store, path: prefix}, nil

	default:
		fi, err := os.Stat(raw)
		if err != nil {
			return location{}, err
		}
		if fi.IsDir() {
			return location{store: blobstore.NewLocalStore(raw)}, nil
		}
		return location{
			store:  blobstore.NewLocalStore(filepath.Dir(raw)),
			path:   filepath.Base(raw),
			single: true,
		}, nil
	}
}

// parseDestination resolves an export target. Remote targets name the blob
// itself; local targets may not exist yet.
func parseDestination(ctx context.Context, raw string, minioSecure bool) (blobstore.BlobStore, string, error) {
	if strings.HasPrefix(raw, "s3://") || strings.HasPrefix(raw, "minio://") {
		loc, err := parseLocation(ctx, raw, minioSecure)
		if err != nil {
			return nil, "", err
		}
		if loc.path == "" || strings.HasSuffix(loc.path, "/") {
			return nil, "", fmt.Errorf("invalid destination %q: missing blob name", raw)
		}
		return loc.store, loc.path, nil
	}

	if fi, err := os.Stat(raw); err == nil && fi.IsDir() {
		return nil, "", fmt.Errorf("invalid destination %q: is a directory", raw)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", err
	}
	return blobstore.NewLocalStore(filepath.Dir(raw)), filepath.Base(raw), nil
}
