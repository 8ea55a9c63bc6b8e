package blockstore

// Strided range operations: apply an operation to indices
// begin, begin+step, begin+2*step, ... while < end.
//
// The engine walks touched blocks only. For each block it needs the mask of
// touched offsets, which is fully determined by the offset of the first
// touched index inside that block. That starting offset is periodic across
// blocks with period step/gcd(W, step), so masks are memoized per starting
// offset and each distinct template is built exactly once. Applying a
// template is one bulk OR, AND-NOT or XOR instead of a per-bit loop,
// bringing the cost down to O(touched blocks + period*W/step).
//
// Boundary clamping: the leading partial intersection is implicit (the
// template is built from the first touched offset onward), the trailing
// block is clamped with a low mask excluding offsets at or after end.

// SetStride sets bits begin, begin+step, ... (< end) to 1.
// Preconditions: step >= 1, end <= Len().
func (s *Store[B]) SetStride(begin, end, step uint64) { s.applyStride(begin, end, step, opSet) }

// ClearStride sets bits begin, begin+step, ... (< end) to 0.
// Preconditions: step >= 1, end <= Len().
func (s *Store[B]) ClearStride(begin, end, step uint64) { s.applyStride(begin, end, step, opClear) }

// FlipStride inverts bits begin, begin+step, ... (< end).
// Preconditions: step >= 1, end <= Len().
func (s *Store[B]) FlipStride(begin, end, step uint64) { s.applyStride(begin, end, step, opFlip) }

// FillStride sets bits begin, begin+step, ... (< end) to v.
func (s *Store[B]) FillStride(begin, end, step uint64, v bool) {
	if v {
		s.SetStride(begin, end, step)
	} else {
		s.ClearStride(begin, end, step)
	}
}

func (s *Store[B]) applyStride(begin, end, step uint64, op rangeOp) {
	if begin >= end || step == 0 {
		return
	}
	if step == 1 {
		s.applyRange(begin, end, op)
		return
	}

	w := Width[B]()
	var (
		templates [64]B
		built     [64]bool
	)

	for i := begin; i < end; {
		blockStart := (i / w) * w
		blockEnd := blockStart + w
		startOff := i - blockStart

		tmpl := templates[startOff]
		if !built[startOff] {
			for j := startOff; j < w; j += step {
				tmpl |= B(1) << j
			}
			templates[startOff] = tmpl
			built[startOff] = true
		}
		if end < blockEnd {
			tmpl &= lowMask[B](end - blockStart)
		}
		s.applyMask(i/w, tmpl, op)

		if step >= w {
			i += step
		} else {
			i += (blockEnd - i + step - 1) / step * step
		}
	}
}

// applyStrideNaive is the per-index reference path. It is retained as the
// correctness baseline for the template engine and is what the engine's
// equivalence tests compare against.
func (s *Store[B]) applyStrideNaive(begin, end, step uint64, op rangeOp) {
	if step == 0 {
		return
	}
	for i := begin; i < end; i += step {
		switch op {
		case opSet:
			s.Set(i)
		case opClear:
			s.Clear(i)
		case opFlip:
			s.Flip(i)
		}
	}
}
