// Package testutil provides testing utilities for the bitmap packages.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating random backing
// integers, word arrays and bit patterns.
//
// # Random Values
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Uint64()
//	var words [16]uint64
//	rng.FillWords(words[:])
//	set := rng.Bits(1024, 0.1) // ~10% of 1024 flags set
package testutil
