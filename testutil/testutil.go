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

// Uint64n returns a uniform value in [0, n). n must be positive.
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint64(r.rand.Int63n(int64(n)))
}

// Bool returns true with probability p.
func (r *RNG) Bool(p float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() < p
}

// FillRandom sets each of the model's bits independently with probability p.
func (r *RNG) FillRandom(m *Model, p float64) {
	for i := uint64(0); i < m.Len(); i++ {
		m.SetValue(i, r.Bool(p))
	}
}

// StrideCase is one randomized strided-operation scenario.
type StrideCase struct {
	Length uint64
	Begin  uint64
	End    uint64
	Step   uint64
}

// StrideCases generates n randomized strided scenarios over sequences of at
// most maxLen bits, biased toward strides near the interesting boundary
// region around typical block widths.
func (r *RNG) StrideCases(n int, maxLen uint64) []StrideCase {
	cases := make([]StrideCase, 0, n)
	for i := 0; i < n; i++ {
		length := r.Uint64n(maxLen) + 1
		begin := r.Uint64n(length)
		end := begin + r.Uint64n(length-begin+1)
		var step uint64
		if r.Bool(0.7) {
			step = r.Uint64n(130) + 1
		} else {
			step = r.Uint64n(length) + 1
		}
		cases = append(cases, StrideCase{Length: length, Begin: begin, End: end, Step: step})
	}
	return cases
}
