// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	stats, err := dataset.LoadAll(ctx, store, "foods/", idx)
//
// # Features
//
//   - Range reads for efficient partial fetches
//   - Multipart uploads for large exports
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints for S3-compatible services
package s3
