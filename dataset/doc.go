// Package dataset reads and writes food record files and loads them into a
// foodidx.Index.
//
// # File Format
//
// One record per line:
//
//	<id>,<name>[,<attribute>,<value>]...
//
// for example
//
//	556540ff5d613c9d5f5935a9,Stewed Plums,calories,124,fat,0.2,fiber,3.8
//
// Attribute tokens are matched exactly against the recognized attribute set;
// pairs with an unknown attribute are ignored. Negative values are dropped.
// A line with fewer than two fields, an empty id, a recognized attribute
// without a value or a value that is not a number is skipped as a whole and
// counted, never partially indexed.
//
// Files written by Writer list every recognized attribute in fixed order,
// using 0 for attributes a record does not define.
//
// # Compression
//
// Blobs whose name ends in ".zst" or ".zstd" are zstd compressed, ".lz4"
// selects LZ4 frames. Anything else is plain text.
//
// # Loading From Blob Stores
//
//	store := blobstore.NewLocalStore("./data")
//	stats, err := dataset.LoadAll(ctx, store, "foods/", idx,
//	    dataset.WithConcurrency(8),
//	    dataset.WithReadLimit(4<<20),
//	)
//
// LoadAll fetches and parses blobs concurrently and then adds the records to
// the index on the calling goroutine in blob name order, so the resulting
// index does not depend on scheduling.
package dataset
