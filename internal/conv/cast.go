package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// MulUint64 returns a*b, or an error if the product does not fit in 64 bits.
func MulUint64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds uint64", a, b)
	}
	return lo, nil
}

// BitsToBytes returns the number of bytes needed to hold n bits.
func BitsToBytes(n uint64) uint64 {
	return n/8 + (n%8+7)/8
}

// PackedBytes returns ceil(width*count/8), the storage needed for count
// fields of width bits each.
func PackedBytes(width, count int) (uint64, error) {
	w, err := IntToUint64(width)
	if err != nil {
		return 0, err
	}
	c, err := IntToUint64(count)
	if err != nil {
		return 0, err
	}
	n, err := MulUint64(w, c)
	if err != nil {
		return 0, err
	}
	return BitsToBytes(n), nil
}
