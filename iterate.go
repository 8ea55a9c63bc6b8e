package bitseq

import "iter"

// Ones iterates over the indices of set bits in ascending order.
func (s *sequence[B]) Ones() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
			if !yield(i) {
				return
			}
		}
	}
}

// Bits iterates over every (index, value) pair in ascending index order.
func (s *sequence[B]) Bits() iter.Seq2[uint64, bool] {
	return func(yield func(uint64, bool) bool) {
		for i := uint64(0); i < s.Len(); i++ {
			if !yield(i, s.Test(i)) {
				return
			}
		}
	}
}
