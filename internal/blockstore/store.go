package blockstore

import (
	"math/bits"
	"unsafe"
)

// Block is the set of unsigned types usable as the physical storage unit.
type Block interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the bit width of the block type B (8, 16, 32 or 64).
func Width[B Block]() uint64 {
	var z B
	return uint64(unsafe.Sizeof(z)) * 8
}

// Store is a bit sequence packed into blocks of type B.
// Block 0 is least significant: bit i lives at offset i%W inside block i/W.
type Store[B Block] struct {
	blocks []B
	nbits  uint64
}

// New creates a zeroed Store holding n bits.
func New[B Block](n uint64) *Store[B] {
	return &Store[B]{
		blocks: make([]B, blocksFor[B](n)),
		nbits:  n,
	}
}

// NewWithCapacity creates a zeroed Store holding n bits with room for
// capBits bits before the next reallocation.
func NewWithCapacity[B Block](n, capBits uint64) *Store[B] {
	sc := blocksFor[B](n)
	cc := blocksFor[B](capBits)
	if cc < sc {
		cc = sc
	}
	return &Store[B]{
		blocks: make([]B, sc, cc),
		nbits:  n,
	}
}

// NewFilled creates a Store holding n bits, all set to v.
func NewFilled[B Block](n uint64, v bool) *Store[B] {
	s := New[B](n)
	if v {
		s.Fill(true)
	}
	return s
}

// FromBlocks creates a Store of n bits initialized from the given blocks.
// Surplus blocks are ignored; missing blocks are zero.
func FromBlocks[B Block](n uint64, blocks []B) *Store[B] {
	s := New[B](n)
	copy(s.blocks, blocks)
	s.sanitize()
	return s
}

func blocksFor[B Block](n uint64) uint64 {
	w := Width[B]()
	return (n + w - 1) / w
}

// Len returns the bit length N.
func (s *Store[B]) Len() uint64 { return s.nbits }

// BlockCount returns the storage length S = ceil(N/W).
func (s *Store[B]) BlockCount() uint64 { return uint64(len(s.blocks)) }

// BlockWidth returns W, the bit width of one block.
func (s *Store[B]) BlockWidth() uint64 { return Width[B]() }

// PartialSize returns P = N mod W; 0 means the last block is fully used.
func (s *Store[B]) PartialSize() uint64 { return s.nbits % Width[B]() }

// Capacity returns the number of bits storable without reallocation.
func (s *Store[B]) Capacity() uint64 { return uint64(cap(s.blocks)) * Width[B]() }

func blockOf[B Block](i uint64) uint64  { return i / Width[B]() }
func offsetOf[B Block](i uint64) uint64 { return i % Width[B]() }

// lowMask returns a block with the low n bits set. n may be any value in
// [0, W]; at n == W the shift wraps to zero and the subtraction yields all
// ones, which is exactly the full mask.
func lowMask[B Block](n uint64) B {
	if n >= Width[B]() {
		return ^B(0)
	}
	return B(1)<<n - 1
}

// rangeMask returns a block with bits [lo, hi) set, lo <= hi <= W.
func rangeMask[B Block](lo, hi uint64) B {
	return lowMask[B](hi) &^ lowMask[B](lo)
}

// sanitize zeroes the filler bits of the trailing partial block so that
// aggregate queries never observe them.
func (s *Store[B]) sanitize() {
	if p := s.PartialSize(); p != 0 {
		s.blocks[len(s.blocks)-1] &= lowMask[B](p)
	}
}

// Test reports whether bit i is set. Precondition: i < Len().
func (s *Store[B]) Test(i uint64) bool {
	return s.blocks[blockOf[B](i)]&(B(1)<<offsetOf[B](i)) != 0
}

// Set sets bit i to 1. Precondition: i < Len().
func (s *Store[B]) Set(i uint64) {
	s.blocks[blockOf[B](i)] |= B(1) << offsetOf[B](i)
}

// Clear sets bit i to 0. Precondition: i < Len().
func (s *Store[B]) Clear(i uint64) {
	s.blocks[blockOf[B](i)] &^= B(1) << offsetOf[B](i)
}

// Flip inverts bit i. Precondition: i < Len().
func (s *Store[B]) Flip(i uint64) {
	s.blocks[blockOf[B](i)] ^= B(1) << offsetOf[B](i)
}

// SetValue sets bit i to v. Precondition: i < Len().
func (s *Store[B]) SetValue(i uint64, v bool) {
	if v {
		s.Set(i)
	} else {
		s.Clear(i)
	}
}

// Swap exchanges the values of bits i and j.
func (s *Store[B]) Swap(i, j uint64) {
	vi, vj := s.Test(i), s.Test(j)
	s.SetValue(i, vj)
	s.SetValue(j, vi)
}

// GetBlock returns block k. Precondition: k < BlockCount().
func (s *Store[B]) GetBlock(k uint64) B { return s.blocks[k] }

// SetBlock overwrites block k with v. On the trailing partial block the
// filler portion of v is masked off. Precondition: k < BlockCount().
func (s *Store[B]) SetBlock(k uint64, v B) {
	s.blocks[k] = v
	if k == uint64(len(s.blocks))-1 {
		s.sanitize()
	}
}

// ClearBlock zeroes block k.
func (s *Store[B]) ClearBlock(k uint64) { s.blocks[k] = 0 }

// FlipBlock inverts every bit of block k.
func (s *Store[B]) FlipBlock(k uint64) {
	s.blocks[k] = ^s.blocks[k]
	if k == uint64(len(s.blocks))-1 {
		s.sanitize()
	}
}

// Fill sets every bit to v.
func (s *Store[B]) Fill(v bool) {
	var b B
	if v {
		b = ^B(0)
	}
	for k := range s.blocks {
		s.blocks[k] = b
	}
	s.sanitize()
}

// FillBlocks overwrites every block with b.
func (s *Store[B]) FillBlocks(b B) {
	for k := range s.blocks {
		s.blocks[k] = b
	}
	s.sanitize()
}

// ClearAll zeroes the whole sequence.
func (s *Store[B]) ClearAll() { s.Fill(false) }

// FlipAll inverts the whole sequence.
func (s *Store[B]) FlipAll() {
	for k := range s.blocks {
		s.blocks[k] = ^s.blocks[k]
	}
	s.sanitize()
}

// All reports whether every bit is set. True for an empty sequence.
func (s *Store[B]) All() bool {
	if s.nbits == 0 {
		return true
	}
	full := len(s.blocks)
	p := s.PartialSize()
	if p != 0 {
		full--
		if s.blocks[full] != lowMask[B](p) {
			return false
		}
	}
	for k := 0; k < full; k++ {
		if s.blocks[k] != ^B(0) {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is set.
func (s *Store[B]) Any() bool {
	for _, b := range s.blocks {
		if b != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set. True for an empty sequence.
func (s *Store[B]) None() bool { return !s.Any() }

// Count returns the number of set bits.
func (s *Store[B]) Count() uint64 {
	var n uint64
	for _, b := range s.blocks {
		n += uint64(bits.OnesCount64(uint64(b)))
	}
	return n
}

// Equal reports whether two stores have identical length and bit content.
func (s *Store[B]) Equal(other *Store[B]) bool {
	if s.nbits != other.nbits {
		return false
	}
	for k, b := range s.blocks {
		if b != other.blocks[k] {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (s *Store[B]) Clone() *Store[B] {
	c := &Store[B]{
		blocks: make([]B, len(s.blocks)),
		nbits:  s.nbits,
	}
	copy(c.blocks, s.blocks)
	return c
}

// CopyFrom overwrites the low min(s.Len(), src.Len()) bits of s with the
// corresponding bits of src. Lengths are unchanged.
func (s *Store[B]) CopyFrom(src *Store[B]) {
	n := min(uint64(len(s.blocks)), uint64(len(src.blocks)))
	copy(s.blocks[:n], src.blocks[:n])
	s.sanitize()
}

// NextSet returns the index of the first set bit at or after i,
// or false when none exists.
func (s *Store[B]) NextSet(i uint64) (uint64, bool) {
	if i >= s.nbits {
		return 0, false
	}
	w := Width[B]()
	k := blockOf[B](i)
	b := s.blocks[k] >> offsetOf[B](i)
	if b != 0 {
		return i + uint64(bits.TrailingZeros64(uint64(b))), true
	}
	for k++; k < uint64(len(s.blocks)); k++ {
		if s.blocks[k] != 0 {
			return k*w + uint64(bits.TrailingZeros64(uint64(s.blocks[k]))), true
		}
	}
	return 0, false
}
