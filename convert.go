package bitseq

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/bitseq/internal/blockstore"
)

// Sequence is satisfied by both *Set and *Dynamic. It is the common handle
// accepted by the package-level conversion and interop functions; outside
// implementations are not supported.
type Sequence[B Block] interface {
	seq() *sequence[B]
}

func (s *sequence[B]) seq() *sequence[B] { return s }

// ToInteger reads the low bits of s as an unsigned integer of type T, block
// 0 least significant. Bits beyond T's width are ignored; bits beyond the
// sequence are zero.
func ToInteger[T constraints.Unsigned, B Block](s Sequence[B]) T {
	return blockstore.ToInteger[T](s.seq().store)
}

// AssignInteger overwrites s with the value v: the low min(Len(), width of
// T) bits take v's bits, everything above becomes zero.
func AssignInteger[T constraints.Unsigned, B Block](s Sequence[B], v T) {
	blockstore.FromInteger(s.seq().store, v)
}

// FromInteger creates a fixed-length sequence of n bits holding the value
// v, block 0 least significant.
func FromInteger[B Block, T constraints.Unsigned](n uint64, v T) *Set[B] {
	s := New[B](n)
	AssignInteger(s, v)
	return s
}

// Convert reinterprets the bit content of s in a sequence with block type
// D and the same bit length. When widening, each destination block is
// assembled from W(D)/W(B) consecutive source blocks, least-significant
// first; narrowing is the inverse split.
func Convert[D Block, B Block](s Sequence[B]) *Set[D] {
	return ConvertSize[D](s, s.seq().Len())
}

// ConvertSize is Convert with an explicit destination bit length. Source
// bits beyond n are truncated silently; destination bits beyond the source
// are zero.
func ConvertSize[D Block, B Block](s Sequence[B], n uint64) *Set[D] {
	return &Set[D]{sequence[D]{store: blockstore.Convert[D](s.seq().store, n)}}
}
