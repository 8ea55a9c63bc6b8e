package bitseq

import (
	"github.com/hupe1980/bitseq/internal/blockstore"
)

// Block is the set of unsigned types usable as the physical storage unit.
// The chosen type fixes the block width W of a sequence.
type Block = blockstore.Block

// sequence carries the operations shared by the fixed and growable variants.
// Both embed it, so the engine is implemented exactly once.
type sequence[B Block] struct {
	store *blockstore.Store[B]
}

// Len returns the bit length N.
func (s *sequence[B]) Len() uint64 { return s.store.Len() }

// BlockCount returns the number of storage blocks, ceil(N/W).
func (s *sequence[B]) BlockCount() uint64 { return s.store.BlockCount() }

// BlockWidth returns W, the number of bits per block.
func (s *sequence[B]) BlockWidth() uint64 { return s.store.BlockWidth() }

// PartialSize returns N mod W, the used bit count of the trailing block;
// 0 means the trailing block is fully used.
func (s *sequence[B]) PartialSize() uint64 { return s.store.PartialSize() }

// Test reports whether bit i is set. Precondition: i < Len().
func (s *sequence[B]) Test(i uint64) bool { return s.store.Test(i) }

// Set sets bit i to 1. Precondition: i < Len().
func (s *sequence[B]) Set(i uint64) { s.store.Set(i) }

// Clear sets bit i to 0. Precondition: i < Len().
func (s *sequence[B]) Clear(i uint64) { s.store.Clear(i) }

// Flip inverts bit i. Precondition: i < Len().
func (s *sequence[B]) Flip(i uint64) { s.store.Flip(i) }

// SetValue sets bit i to v. Precondition: i < Len().
func (s *sequence[B]) SetValue(i uint64, v bool) { s.store.SetValue(i, v) }

// Swap exchanges the values of bits i and j.
func (s *sequence[B]) Swap(i, j uint64) { s.store.Swap(i, j) }

// GetBlock returns block k. Precondition: k < BlockCount().
func (s *sequence[B]) GetBlock(k uint64) B { return s.store.GetBlock(k) }

// SetBlock overwrites block k. Filler bits of a trailing partial block are
// masked off. Precondition: k < BlockCount().
func (s *sequence[B]) SetBlock(k uint64, v B) { s.store.SetBlock(k, v) }

// ClearBlock zeroes block k. Precondition: k < BlockCount().
func (s *sequence[B]) ClearBlock(k uint64) { s.store.ClearBlock(k) }

// FlipBlock inverts block k. Precondition: k < BlockCount().
func (s *sequence[B]) FlipBlock(k uint64) { s.store.FlipBlock(k) }

// Fill sets every bit to v.
func (s *sequence[B]) Fill(v bool) { s.store.Fill(v) }

// FillBlocks overwrites every block with b.
func (s *sequence[B]) FillBlocks(b B) { s.store.FillBlocks(b) }

// ClearAll sets every bit to 0.
func (s *sequence[B]) ClearAll() { s.store.ClearAll() }

// FlipAll inverts every bit.
func (s *sequence[B]) FlipAll() { s.store.FlipAll() }

// SetRange sets bits [begin, end) to 1. Precondition: begin <= end <= Len().
func (s *sequence[B]) SetRange(begin, end uint64) { s.store.SetRange(begin, end) }

// ClearRange sets bits [begin, end) to 0. Precondition: begin <= end <= Len().
func (s *sequence[B]) ClearRange(begin, end uint64) { s.store.ClearRange(begin, end) }

// FlipRange inverts bits [begin, end). Precondition: begin <= end <= Len().
func (s *sequence[B]) FlipRange(begin, end uint64) { s.store.FlipRange(begin, end) }

// FillRange sets bits [begin, end) to v.
func (s *sequence[B]) FillRange(begin, end uint64, v bool) { s.store.FillRange(begin, end, v) }

// SetStride sets bits begin, begin+step, ... (< end) to 1.
// Preconditions: step >= 1, end <= Len().
func (s *sequence[B]) SetStride(begin, end, step uint64) { s.store.SetStride(begin, end, step) }

// ClearStride sets bits begin, begin+step, ... (< end) to 0.
// Preconditions: step >= 1, end <= Len().
func (s *sequence[B]) ClearStride(begin, end, step uint64) { s.store.ClearStride(begin, end, step) }

// FlipStride inverts bits begin, begin+step, ... (< end).
// Preconditions: step >= 1, end <= Len().
func (s *sequence[B]) FlipStride(begin, end, step uint64) { s.store.FlipStride(begin, end, step) }

// FillStride sets bits begin, begin+step, ... (< end) to v.
func (s *sequence[B]) FillStride(begin, end, step uint64, v bool) {
	s.store.FillStride(begin, end, step, v)
}

// SetBlockRange sets blocks [begin, end) to all ones.
// Precondition: begin <= end <= BlockCount().
func (s *sequence[B]) SetBlockRange(begin, end uint64) { s.store.SetBlockRange(begin, end) }

// ClearBlockRange zeroes blocks [begin, end).
// Precondition: begin <= end <= BlockCount().
func (s *sequence[B]) ClearBlockRange(begin, end uint64) { s.store.ClearBlockRange(begin, end) }

// FlipBlockRange inverts blocks [begin, end).
// Precondition: begin <= end <= BlockCount().
func (s *sequence[B]) FlipBlockRange(begin, end uint64) { s.store.FlipBlockRange(begin, end) }

// FillBlockRange overwrites blocks [begin, end) with b.
// Precondition: begin <= end <= BlockCount().
func (s *sequence[B]) FillBlockRange(begin, end uint64, b B) { s.store.FillBlockRange(begin, end, b) }

// ShiftLeft shifts the sequence toward higher indices by amount, in place.
// Vacated low positions become 0; bits pushed past Len() are discarded.
func (s *sequence[B]) ShiftLeft(amount uint64) { s.store.ShiftLeft(amount) }

// ShiftRight shifts the sequence toward lower indices by amount, in place.
// Vacated high positions become 0; bits pushed below 0 are discarded.
func (s *sequence[B]) ShiftRight(amount uint64) { s.store.ShiftRight(amount) }

// RotateLeft rotates toward higher indices by amount; bits wrap around.
func (s *sequence[B]) RotateLeft(amount uint64) { s.store.RotateLeft(amount) }

// RotateRight rotates toward lower indices by amount; bits wrap around.
func (s *sequence[B]) RotateRight(amount uint64) { s.store.RotateRight(amount) }

// All reports whether every bit is set. True for length 0.
func (s *sequence[B]) All() bool { return s.store.All() }

// Any reports whether at least one bit is set.
func (s *sequence[B]) Any() bool { return s.store.Any() }

// None reports whether no bit is set. True for length 0.
func (s *sequence[B]) None() bool { return s.store.None() }

// Count returns the number of set bits.
func (s *sequence[B]) Count() uint64 { return s.store.Count() }

// NextSet returns the index of the first set bit at or after i, or false
// when none exists.
func (s *sequence[B]) NextSet(i uint64) (uint64, bool) { return s.store.NextSet(i) }

// Set is a bit sequence whose length is fixed at construction. Copying the
// struct shares storage; use Clone for an independent copy.
type Set[B Block] struct {
	sequence[B]
}

// New creates a zeroed fixed-length sequence of n bits.
func New[B Block](n uint64) *Set[B] {
	return &Set[B]{sequence[B]{store: blockstore.New[B](n)}}
}

// NewFilled creates a fixed-length sequence of n bits, all set to v.
func NewFilled[B Block](n uint64, v bool) *Set[B] {
	return &Set[B]{sequence[B]{store: blockstore.NewFilled[B](n, v)}}
}

// FromBlocks creates a fixed-length sequence of n bits initialized from the
// given blocks, block 0 least significant. Surplus blocks are ignored,
// missing blocks are zero.
func FromBlocks[B Block](n uint64, blocks []B) *Set[B] {
	return &Set[B]{sequence[B]{store: blockstore.FromBlocks(n, blocks)}}
}

// Clone returns an independent deep copy.
func (s *Set[B]) Clone() *Set[B] {
	return &Set[B]{sequence[B]{store: s.store.Clone()}}
}

// Equal reports whether both sequences have the same length and content.
func (s *Set[B]) Equal(other *Set[B]) bool { return s.store.Equal(other.store) }

// ShiftedLeft returns a new sequence shifted toward higher indices by
// amount.
func (s *Set[B]) ShiftedLeft(amount uint64) *Set[B] {
	return &Set[B]{sequence[B]{store: s.store.ShiftedLeft(amount)}}
}

// ShiftedRight returns a new sequence shifted toward lower indices by
// amount.
func (s *Set[B]) ShiftedRight(amount uint64) *Set[B] {
	return &Set[B]{sequence[B]{store: s.store.ShiftedRight(amount)}}
}

// Checked returns a bounds-checked view of s.
func (s *Set[B]) Checked() Checked[B] { return Checked[B]{seq: &s.sequence} }
