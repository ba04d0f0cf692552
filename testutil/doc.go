// Package testutil provides testing utilities for segbits.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for field values and a reference
// model of a packed array to compare results against.
//
// # Random Field Values
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Field(5)           // uniform in [0, 2^5)
//	vs := rng.Fields(100, 12)   // 100 values of 12 bits
//
// # Reference Model
//
//	want := testutil.MaskWidth(v, width) // what a width-bit field stores
package testutil
