// Package bitseq provides bit-packed boolean sequences backed by arrays of
// fixed-width unsigned blocks.
//
// Two variants share one block-level engine:
//
//   - Set[B] has a fixed bit length chosen at construction.
//   - Dynamic[B] grows and shrinks at bit and block granularity.
//
// The block type B (uint8, uint16, uint32 or uint64) fixes the block width W.
// Bit i lives at offset i%W inside block i/W; block 0 is least significant,
// which also defines the little-block-endian integer mapping used by
// ToInteger, FromInteger and the cross-width Convert.
//
// # Quick Start
//
//	s := bitseq.New[uint64](1024)
//	s.SetRange(10, 200)         // contiguous: partial/full/partial blocks
//	s.FlipStride(3, 900, 7)     // strided: periodic block templates
//	s.ShiftLeft(13)             // in place; ShiftedLeft allocates
//	n := s.Count()
//
//	d := bitseq.NewDynamic[uint8](bitseq.WithCapacity(256))
//	d.PushBack(true)
//	d.Resize(100)
//
// # Bounds Checking
//
// Plain methods are the unchecked fast path: indexes must satisfy the
// documented preconditions (i < Len(), k < BlockCount()). The Checked view
// validates arguments and reports violations as recoverable errors:
//
//	if err := s.Checked().Set(i); errors.Is(err, bitseq.ErrIndexRange) { ... }
//
// # Concurrency
//
// Sequences carry no internal synchronization. Concurrent mutation of one
// instance must be serialized by the caller; distinct instances are
// independent.
package bitseq
