// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This package
// uses the official MinIO Go client library and works with MinIO and other
// S3-compatible storage systems like Ceph, SeaweedFS, and Garage.
//
// # Basic Usage
//
//	store, err := minioblob.New("localhost:9000", "datasets",
//	    minioblob.WithStaticCredentials("minioadmin", "minioadmin"),
//	    minioblob.WithPrefix("foods/"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := dataset.LoadAll(ctx, store, "", idx)
//
// An existing client can be wrapped with NewStore.
package minio
