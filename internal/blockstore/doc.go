// Package blockstore implements the block-level engine behind bitseq.
//
// A Store is a logical sequence of N bits packed into fixed-width unsigned
// blocks, block 0 holding the lowest bit indices. All higher-level
// operations (contiguous ranges, strided ranges, shifts, conversion,
// growable storage) resolve to block reads and writes through the
// addressing mapping blockOf(i)=i/W, offsetOf(i)=i%W.
//
// Layout:
//
//	┌──────────────┬──────────────┬──────────────────────┐
//	│ Block 0      │ Block 1      │ Block S-1 (partial)  │
//	│ bits [0,W)   │ bits [W,2W)  │ low P bits valid     │
//	└──────────────┴──────────────┴──────────────────────┘
//
// The trailing block is only partially used when N is not a multiple of W.
// Every bulk mutation re-masks that block, so filler bits are always zero
// and aggregate queries (All, Any, Count, Equal) never observe them.
//
// A Store has no internal synchronization; callers must serialize
// concurrent mutation.
package blockstore
