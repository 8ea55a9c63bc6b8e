package blockstore

// Whole-sequence logical shifts. A shift by amount decomposes into a block
// displacement amount/W and an intra-block displacement amount%W; every
// destination block combines one displaced source block with the carry bits
// of its neighbor. Vacated positions are zero and bits shifted past either
// boundary are discarded.
//
// The in-place right shift walks destinations in ascending order because its
// sources sit at higher indices and have not been overwritten yet; the
// in-place left shift walks descending for the mirrored reason. When
// amount%W == 0 the carry term is skipped entirely.

// ShiftRight shifts the sequence toward lower indices by amount, in place.
func (s *Store[B]) ShiftRight(amount uint64) {
	if amount == 0 {
		return
	}
	if amount >= s.nbits {
		s.ClearAll()
		return
	}
	w := Width[B]()
	blockShift := amount / w
	bitShift := amount % w
	n := uint64(len(s.blocks))

	for i := uint64(0); i < n; i++ {
		var v B
		if i+blockShift < n {
			v = s.blocks[i+blockShift] >> bitShift
			if bitShift > 0 && i+blockShift+1 < n {
				v |= s.blocks[i+blockShift+1] << (w - bitShift)
			}
		}
		s.blocks[i] = v
	}
}

// ShiftLeft shifts the sequence toward higher indices by amount, in place.
func (s *Store[B]) ShiftLeft(amount uint64) {
	if amount == 0 {
		return
	}
	if amount >= s.nbits {
		s.ClearAll()
		return
	}
	w := Width[B]()
	blockShift := amount / w
	bitShift := amount % w
	n := uint64(len(s.blocks))

	for i := n; i > 0; {
		i--
		var v B
		if i >= blockShift {
			v = s.blocks[i-blockShift] << bitShift
			if bitShift > 0 && i > blockShift {
				v |= s.blocks[i-blockShift-1] >> (w - bitShift)
			}
		}
		s.blocks[i] = v
	}
	s.sanitize()
}

// ShiftedRight returns a new store holding the sequence shifted toward lower
// indices by amount.
func (s *Store[B]) ShiftedRight(amount uint64) *Store[B] {
	r := s.Clone()
	r.ShiftRight(amount)
	return r
}

// ShiftedLeft returns a new store holding the sequence shifted toward higher
// indices by amount.
func (s *Store[B]) ShiftedLeft(amount uint64) *Store[B] {
	r := s.Clone()
	r.ShiftLeft(amount)
	return r
}

// RotateLeft rotates the sequence toward higher indices by amount; bits
// leaving the top re-enter at index 0.
func (s *Store[B]) RotateLeft(amount uint64) {
	if s.nbits == 0 {
		return
	}
	amount %= s.nbits
	if amount == 0 {
		return
	}
	wrapped := s.ShiftedRight(s.nbits - amount)
	s.ShiftLeft(amount)
	for k, b := range wrapped.blocks {
		s.blocks[k] |= b
	}
}

// RotateRight rotates the sequence toward lower indices by amount; bits
// leaving index 0 re-enter at the top.
func (s *Store[B]) RotateRight(amount uint64) {
	if s.nbits == 0 {
		return
	}
	amount %= s.nbits
	s.RotateLeft(s.nbits - amount)
}
