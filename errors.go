package bitseq

import "errors"

var (
	// ErrIndexRange is returned by the checked API when a bit index is not
	// below the sequence length.
	ErrIndexRange = errors.New("bit index out of range")

	// ErrBlockRange is returned by the checked API when a block index is not
	// below the block count.
	ErrBlockRange = errors.New("block index out of range")

	// ErrRange is returned by the checked API when a [begin, end) range is
	// inverted or exceeds the sequence length.
	ErrRange = errors.New("invalid bit range")

	// ErrStride is returned by the checked API when a stride of zero is
	// given.
	ErrStride = errors.New("stride must be positive")
)
