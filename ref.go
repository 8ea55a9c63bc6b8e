package bitseq

// Ref is a small value handle onto one bit of a sequence: the pair
// (sequence, index). It replaces proxy-reference indexing; assignment goes
// through the sequence's own primitives, so no raw storage aliasing is
// exposed.
type Ref[B Block] struct {
	seq   *sequence[B]
	index uint64
}

// At returns a handle onto bit i of s. Precondition: i < s.Len().
func At[B Block](s Sequence[B], i uint64) Ref[B] {
	return Ref[B]{seq: s.seq(), index: i}
}

// Index returns the bit index the handle points at.
func (r Ref[B]) Index() uint64 { return r.index }

// Get returns the current value of the bit.
func (r Ref[B]) Get() bool { return r.seq.Test(r.index) }

// Set assigns v to the bit.
func (r Ref[B]) Set(v bool) { r.seq.SetValue(r.index, v) }

// Clear sets the bit to 0.
func (r Ref[B]) Clear() { r.seq.Clear(r.index) }

// Flip inverts the bit.
func (r Ref[B]) Flip() { r.seq.Flip(r.index) }
