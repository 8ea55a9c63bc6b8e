package blockstore

// Contiguous range operations over [begin, end).
//
// Each operation decomposes the range into a leading partial block, a run of
// full interior blocks, and a trailing partial block. The partial segments
// are applied with a single boundary mask; the interior is overwritten (or
// negated) whole blocks at a time. The result is bit-for-bit identical to
// applying the single-bit primitive to every index in the range.

type rangeOp uint8

const (
	opSet rangeOp = iota
	opClear
	opFlip
)

// SetRange sets every bit in [begin, end) to 1.
// Precondition: begin <= end <= Len().
func (s *Store[B]) SetRange(begin, end uint64) { s.applyRange(begin, end, opSet) }

// ClearRange sets every bit in [begin, end) to 0.
// Precondition: begin <= end <= Len().
func (s *Store[B]) ClearRange(begin, end uint64) { s.applyRange(begin, end, opClear) }

// FlipRange inverts every bit in [begin, end).
// Precondition: begin <= end <= Len().
func (s *Store[B]) FlipRange(begin, end uint64) { s.applyRange(begin, end, opFlip) }

// FillRange sets every bit in [begin, end) to v.
func (s *Store[B]) FillRange(begin, end uint64, v bool) {
	if v {
		s.SetRange(begin, end)
	} else {
		s.ClearRange(begin, end)
	}
}

func (s *Store[B]) applyRange(begin, end uint64, op rangeOp) {
	if begin >= end {
		return
	}
	w := Width[B]()
	first := begin / w
	last := (end - 1) / w
	loOff := begin % w
	hiOff := (end-1)%w + 1

	if first == last {
		s.applyMask(first, rangeMask[B](loOff, hiOff), op)
		return
	}

	s.applyMask(first, rangeMask[B](loOff, w), op)
	for k := first + 1; k < last; k++ {
		switch op {
		case opSet:
			s.blocks[k] = ^B(0)
		case opClear:
			s.blocks[k] = 0
		case opFlip:
			s.blocks[k] = ^s.blocks[k]
		}
	}
	s.applyMask(last, lowMask[B](hiOff), op)
}

func (s *Store[B]) applyMask(k uint64, mask B, op rangeOp) {
	switch op {
	case opSet:
		s.blocks[k] |= mask
	case opClear:
		s.blocks[k] &^= mask
	case opFlip:
		s.blocks[k] ^= mask
	}
}

// SetBlockRange sets blocks [begin, end) to all ones. The trailing partial
// block, if included, keeps its filler bits zero.
// Precondition: begin <= end <= BlockCount().
func (s *Store[B]) SetBlockRange(begin, end uint64) {
	for k := begin; k < end; k++ {
		s.blocks[k] = ^B(0)
	}
	s.sanitize()
}

// ClearBlockRange zeroes blocks [begin, end).
// Precondition: begin <= end <= BlockCount().
func (s *Store[B]) ClearBlockRange(begin, end uint64) {
	for k := begin; k < end; k++ {
		s.blocks[k] = 0
	}
}

// FlipBlockRange inverts blocks [begin, end).
// Precondition: begin <= end <= BlockCount().
func (s *Store[B]) FlipBlockRange(begin, end uint64) {
	for k := begin; k < end; k++ {
		s.blocks[k] = ^s.blocks[k]
	}
	s.sanitize()
}

// FillBlockRange overwrites blocks [begin, end) with b.
// Precondition: begin <= end <= BlockCount().
func (s *Store[B]) FillBlockRange(begin, end uint64, b B) {
	for k := begin; k < end; k++ {
		s.blocks[k] = b
	}
	s.sanitize()
}
