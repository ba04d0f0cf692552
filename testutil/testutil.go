package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Field returns a pseudo-random value that fits in width bits.
func (r *RNG) Field(width int) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return MaskWidth(r.rand.Uint32(), width)
}

// Fields returns n pseudo-random values that fit in width bits.
// Locks only once per call (preferred over calling Field in a loop).
func (r *RNG) Fields(n, width int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	vals := make([]uint32, n)
	for i := range vals {
		vals[i] = MaskWidth(r.rand.Uint32(), width)
	}
	return vals
}

// MaskWidth returns the low width bits of v.
func MaskWidth(v uint32, width int) uint32 {
	if width >= 32 {
		return v
	}
	if width <= 0 {
		return 0
	}
	return v & (1<<uint(width) - 1)
}
