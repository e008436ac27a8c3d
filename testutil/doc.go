// Package testutil provides testing utilities for foodidx.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source with helpers for
// generating keys, attribute amounts and record names.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(1000, 50)     // 1000 keys, 50 distinct values
//	names := rng.Names(100)        // short lowercase names
//	fat := rng.Amounts(100, 40)    // values in [0, 40)
package testutil
