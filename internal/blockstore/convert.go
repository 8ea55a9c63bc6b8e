package blockstore

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer conversion treats the store as a little-block-endian integer:
// block 0 is least significant. An integer no wider than one block occupies
// block 0 directly; a wider one spans consecutive blocks, least-significant
// first.

func intWidth[T constraints.Unsigned]() uint64 {
	var z T
	return uint64(unsafe.Sizeof(z)) * 8
}

// ToInteger reads the low bits of the store as an unsigned integer of type
// T. Bits beyond T's width are ignored; bits beyond the store are zero.
func ToInteger[T constraints.Unsigned, B Block](s *Store[B]) T {
	if len(s.blocks) == 0 {
		return 0
	}
	w := Width[B]()
	tw := intWidth[T]()
	if tw <= w {
		return T(s.blocks[0])
	}
	span := tw / w
	if sc := uint64(len(s.blocks)); span > sc {
		span = sc
	}
	var r T
	for i := uint64(0); i < span; i++ {
		r |= T(s.blocks[i]) << (i * w)
	}
	return r
}

// FromInteger overwrites the store with the value v: the low min(Len(),
// width of T) bits take v's bits, everything above is zero.
func FromInteger[T constraints.Unsigned, B Block](s *Store[B], v T) {
	s.ClearAll()
	if len(s.blocks) == 0 {
		return
	}
	w := Width[B]()
	tw := intWidth[T]()
	if tw <= w {
		s.blocks[0] = B(v)
		s.sanitize()
		return
	}
	span := tw / w
	if sc := uint64(len(s.blocks)); span > sc {
		span = sc
	}
	for i := uint64(0); i < span; i++ {
		s.blocks[i] = B(v >> (i * w))
	}
	s.sanitize()
}

// Convert reinterprets src's bit content in a store with block type D and
// bit length n. When widening, each destination block is assembled from
// ratio consecutive source blocks, least-significant first; narrowing is the
// inverse split. Source bits beyond n are truncated silently; destination
// bits beyond the source are zero.
func Convert[D Block, S Block](src *Store[S], n uint64) *Store[D] {
	dst := New[D](n)
	wd, ws := Width[D](), Width[S]()

	switch {
	case wd >= ws:
		ratio := wd / ws
		for i := range dst.blocks {
			for j := uint64(0); j < ratio; j++ {
				si := uint64(i)*ratio + j
				if si >= uint64(len(src.blocks)) {
					break
				}
				dst.blocks[i] |= D(src.blocks[si]) << (j * ws)
			}
		}
	default:
		ratio := ws / wd
		for i := range src.blocks {
			for j := uint64(0); j < ratio; j++ {
				di := uint64(i)*ratio + j
				if di >= uint64(len(dst.blocks)) {
					break
				}
				dst.blocks[di] = D(src.blocks[i] >> (j * wd))
			}
		}
	}
	dst.sanitize()
	return dst
}
