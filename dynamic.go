package bitseq

import (
	"github.com/hupe1980/bitseq/internal/blockstore"
)

// Dynamic is a growable bit sequence. It supports every Set operation plus
// resize, push/pop and insert/remove at bit and block granularity. Storage
// is one exclusively owned buffer, reallocated with amortized doubling when
// the block count grows past capacity.
type Dynamic[B Block] struct {
	sequence[B]
	logger *Logger
}

// NewDynamic creates an empty growable sequence.
func NewDynamic[B Block](opts ...Option) *Dynamic[B] {
	return NewDynamicSize[B](0, opts...)
}

// NewDynamicSize creates a zeroed growable sequence of n bits.
func NewDynamicSize[B Block](n uint64, opts ...Option) *Dynamic[B] {
	o := options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Dynamic[B]{
		sequence: sequence[B]{store: blockstore.NewWithCapacity[B](n, o.capacityBits)},
		logger:   o.logger,
	}
}

// Capacity returns the number of bits storable without reallocation.
func (d *Dynamic[B]) Capacity() uint64 { return d.store.Capacity() }

// Resize changes the bit length to n. Bits up to min(old, n) are preserved;
// bits beyond the old length start out zero. Resizing to zero releases the
// buffer.
func (d *Dynamic[B]) Resize(n uint64) {
	defer d.logRealloc("resize")()
	d.store.Resize(n)
}

// PushBack appends one bit.
func (d *Dynamic[B]) PushBack(v bool) {
	defer d.logRealloc("push_back")()
	d.store.PushBack(v)
}

// PopBack removes the last bit. Precondition: Len() > 0.
func (d *Dynamic[B]) PopBack() {
	d.store.PopBack()
}

// Insert inserts bit v at index i, shifting bits [i, Len()) one position
// up. Precondition: i <= Len().
func (d *Dynamic[B]) Insert(i uint64, v bool) {
	defer d.logRealloc("insert")()
	d.store.Insert(i, v)
}

// Remove deletes bit i, shifting higher bits one position down.
// Precondition: i < Len().
func (d *Dynamic[B]) Remove(i uint64) {
	d.store.Remove(i)
}

// PushBackBlock appends one full block. A partial trailing block is first
// expanded to a full one; the expanded bits are zero.
func (d *Dynamic[B]) PushBackBlock(b B) {
	defer d.logRealloc("push_back_block")()
	d.store.PushBackBlock(b)
}

// PopBackBlock removes the trailing block; a partial trailing block counts
// as the block removed. Precondition: BlockCount() > 0.
func (d *Dynamic[B]) PopBackBlock() {
	d.store.PopBackBlock()
}

// InsertBlock inserts block b at block index k, shifting higher blocks one
// position up. Precondition: k <= BlockCount().
func (d *Dynamic[B]) InsertBlock(k uint64, b B) {
	defer d.logRealloc("insert_block")()
	d.store.InsertBlock(k, b)
}

// RemoveBlock deletes block k, shifting higher blocks one position down.
// Precondition: k < BlockCount().
func (d *Dynamic[B]) RemoveBlock(k uint64) {
	d.store.RemoveBlock(k)
}

// Clip reallocates storage to the exact block count, releasing surplus
// capacity.
func (d *Dynamic[B]) Clip() {
	defer d.logRealloc("clip")()
	d.store.Clip()
}

// Clone returns an independent deep copy. The clone keeps the logger.
func (d *Dynamic[B]) Clone() *Dynamic[B] {
	return &Dynamic[B]{
		sequence: sequence[B]{store: d.store.Clone()},
		logger:   d.logger,
	}
}

// Equal reports whether both sequences have the same length and content.
func (d *Dynamic[B]) Equal(other *Dynamic[B]) bool { return d.store.Equal(other.store) }

// ShiftedLeft returns a new sequence shifted toward higher indices by
// amount.
func (d *Dynamic[B]) ShiftedLeft(amount uint64) *Dynamic[B] {
	return &Dynamic[B]{sequence: sequence[B]{store: d.store.ShiftedLeft(amount)}, logger: d.logger}
}

// ShiftedRight returns a new sequence shifted toward lower indices by
// amount.
func (d *Dynamic[B]) ShiftedRight(amount uint64) *Dynamic[B] {
	return &Dynamic[B]{sequence: sequence[B]{store: d.store.ShiftedRight(amount)}, logger: d.logger}
}

// Checked returns a bounds-checked view of d.
func (d *Dynamic[B]) Checked() Checked[B] { return Checked[B]{seq: &d.sequence} }

// logRealloc captures capacity before a lifecycle op and emits a Debug
// record when the op reallocated.
func (d *Dynamic[B]) logRealloc(op string) func() {
	before := d.store.Capacity()
	return func() {
		if after := d.store.Capacity(); after != before {
			d.logger.LogRealloc(op, before, after, d.store.Len())
		}
	}
}
