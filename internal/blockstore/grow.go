package blockstore

// Growable-storage lifecycle. Every operation that changes the block count
// goes through the append machinery of the backing slice, so growth is
// amortized: a reallocation copies the surviving content once and the old
// buffer is dropped for the collector. Newly exposed bits are always zero.

// Resize changes the bit length to n, preserving bits up to min(old, n).
// Bits beyond the old length start out zero. Resizing to zero releases the
// buffer.
func (s *Store[B]) Resize(n uint64) {
	if n == s.nbits {
		return
	}
	if n == 0 {
		s.blocks = nil
		s.nbits = 0
		return
	}
	sc := blocksFor[B](n)
	switch {
	case sc > uint64(len(s.blocks)):
		if sc <= uint64(cap(s.blocks)) {
			s.blocks = s.blocks[:sc]
		} else {
			grown := make([]B, sc)
			copy(grown, s.blocks)
			s.blocks = grown
		}
	case sc < uint64(len(s.blocks)):
		clear(s.blocks[sc:])
		s.blocks = s.blocks[:sc]
	}
	s.nbits = n
	s.sanitize()
}

// PushBack appends one bit, growing storage by one block when the current
// trailing block is full. Growth doubles capacity, so a long run of pushes
// reallocates O(log n) times.
func (s *Store[B]) PushBack(v bool) {
	if s.nbits == uint64(len(s.blocks))*Width[B]() {
		s.blocks = append(s.blocks, 0)
	}
	s.nbits++
	s.SetValue(s.nbits-1, v)
}

// PopBack removes the last bit. The trailing block is dropped when it
// becomes empty; capacity is retained. Precondition: Len() > 0.
func (s *Store[B]) PopBack() {
	s.Clear(s.nbits - 1)
	s.nbits--
	if blocksFor[B](s.nbits) < uint64(len(s.blocks)) {
		s.blocks = s.blocks[:len(s.blocks)-1]
	}
}

// Insert inserts bit v at index i, shifting bits [i, Len()) one position up.
// Precondition: i <= Len().
func (s *Store[B]) Insert(i uint64, v bool) {
	if i == s.nbits {
		s.PushBack(v)
		return
	}
	s.PushBack(false)
	for j := s.nbits - 1; j > i; j-- {
		s.SetValue(j, s.Test(j-1))
	}
	s.SetValue(i, v)
}

// Remove deletes bit i, shifting bits (i, Len()) one position down.
// Precondition: i < Len().
func (s *Store[B]) Remove(i uint64) {
	for j := i; j+1 < s.nbits; j++ {
		s.SetValue(j, s.Test(j+1))
	}
	s.PopBack()
}

// PushBackBlock appends one full block. When the current length is not a
// multiple of W the partial trailing block is first expanded to a full one;
// the expanded bits are zero.
func (s *Store[B]) PushBackBlock(b B) {
	s.blocks = append(s.blocks, b)
	s.nbits = uint64(len(s.blocks)) * Width[B]()
}

// PopBackBlock removes the trailing block. A partial trailing block counts
// as the block removed. Precondition: BlockCount() > 0.
func (s *Store[B]) PopBackBlock() {
	last := len(s.blocks) - 1
	s.blocks[last] = 0
	s.blocks = s.blocks[:last]
	s.nbits = uint64(len(s.blocks)) * Width[B]()
}

// InsertBlock inserts block b at block index k, shifting blocks [k,
// BlockCount()) one position up. A partial trailing block is expanded to a
// full one. Precondition: k <= BlockCount().
func (s *Store[B]) InsertBlock(k uint64, b B) {
	if k == uint64(len(s.blocks)) {
		s.PushBackBlock(b)
		return
	}
	s.blocks = append(s.blocks, 0)
	copy(s.blocks[k+1:], s.blocks[k:])
	s.blocks[k] = b
	s.nbits = uint64(len(s.blocks)) * Width[B]()
}

// RemoveBlock deletes block k, shifting higher blocks one position down.
// Precondition: k < BlockCount().
func (s *Store[B]) RemoveBlock(k uint64) {
	copy(s.blocks[k:], s.blocks[k+1:])
	s.PopBackBlock()
}

// Clip reallocates the buffer to the exact block count, releasing surplus
// capacity.
func (s *Store[B]) Clip() {
	if len(s.blocks) == cap(s.blocks) {
		return
	}
	clipped := make([]B, len(s.blocks))
	copy(clipped, s.blocks)
	s.blocks = clipped
}
