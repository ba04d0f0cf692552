// Package conv provides checked integer conversions and sizing arithmetic.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between Go's platform-dependent int and fixed-width unsigned
// types, and when multiplying field widths by field counts.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bit offsets within a byte), use direct type casts instead to avoid
// overhead.
package conv
