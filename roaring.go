package bitseq

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring exports the set-bit indices of s into a 32-bit Roaring bitmap.
// Indices above math.MaxUint32 do not fit the roaring universe and are
// skipped.
func ToRoaring[B Block](s Sequence[B]) *roaring.Bitmap {
	rb := roaring.New()
	for i := range s.seq().Ones() {
		if i > math.MaxUint32 {
			break
		}
		rb.Add(uint32(i))
	}
	return rb
}

// FromRoaring creates a fixed-length sequence of n bits from a Roaring
// bitmap; members at or above n are dropped.
func FromRoaring[B Block](rb *roaring.Bitmap, n uint64) *Set[B] {
	s := New[B](n)
	it := rb.Iterator()
	for it.HasNext() {
		i := uint64(it.Next())
		if i >= n {
			break
		}
		s.Set(i)
	}
	return s
}
