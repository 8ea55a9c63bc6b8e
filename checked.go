package bitseq

import "fmt"

// Checked is a bounds-checked view over a sequence. Its methods validate
// every index before touching storage and report violations as recoverable
// errors wrapping ErrIndexRange, ErrBlockRange, ErrRange or ErrStride,
// instead of the undefined behavior of the unchecked fast path.
type Checked[B Block] struct {
	seq *sequence[B]
}

func (c Checked[B]) checkIndex(i uint64) error {
	if i >= c.seq.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexRange, i, c.seq.Len())
	}
	return nil
}

func (c Checked[B]) checkBlock(k uint64) error {
	if k >= c.seq.BlockCount() {
		return fmt.Errorf("%w: block %d, count %d", ErrBlockRange, k, c.seq.BlockCount())
	}
	return nil
}

func (c Checked[B]) checkRange(begin, end uint64) error {
	if begin > end || end > c.seq.Len() {
		return fmt.Errorf("%w: [%d, %d), length %d", ErrRange, begin, end, c.seq.Len())
	}
	return nil
}

func (c Checked[B]) checkStride(begin, end, step uint64) error {
	if step == 0 {
		return fmt.Errorf("%w: got 0", ErrStride)
	}
	return c.checkRange(begin, end)
}

// Test reports whether bit i is set.
func (c Checked[B]) Test(i uint64) (bool, error) {
	if err := c.checkIndex(i); err != nil {
		return false, err
	}
	return c.seq.Test(i), nil
}

// Set sets bit i to 1.
func (c Checked[B]) Set(i uint64) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.seq.Set(i)
	return nil
}

// Clear sets bit i to 0.
func (c Checked[B]) Clear(i uint64) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.seq.Clear(i)
	return nil
}

// Flip inverts bit i.
func (c Checked[B]) Flip(i uint64) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.seq.Flip(i)
	return nil
}

// SetValue sets bit i to v.
func (c Checked[B]) SetValue(i uint64, v bool) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.seq.SetValue(i, v)
	return nil
}

// GetBlock returns block k.
func (c Checked[B]) GetBlock(k uint64) (B, error) {
	if err := c.checkBlock(k); err != nil {
		var zero B
		return zero, err
	}
	return c.seq.GetBlock(k), nil
}

// SetBlock overwrites block k.
func (c Checked[B]) SetBlock(k uint64, v B) error {
	if err := c.checkBlock(k); err != nil {
		return err
	}
	c.seq.SetBlock(k, v)
	return nil
}

// SetRange sets bits [begin, end) to 1.
func (c Checked[B]) SetRange(begin, end uint64) error {
	if err := c.checkRange(begin, end); err != nil {
		return err
	}
	c.seq.SetRange(begin, end)
	return nil
}

// ClearRange sets bits [begin, end) to 0.
func (c Checked[B]) ClearRange(begin, end uint64) error {
	if err := c.checkRange(begin, end); err != nil {
		return err
	}
	c.seq.ClearRange(begin, end)
	return nil
}

// FlipRange inverts bits [begin, end).
func (c Checked[B]) FlipRange(begin, end uint64) error {
	if err := c.checkRange(begin, end); err != nil {
		return err
	}
	c.seq.FlipRange(begin, end)
	return nil
}

// SetStride sets bits begin, begin+step, ... (< end) to 1.
func (c Checked[B]) SetStride(begin, end, step uint64) error {
	if err := c.checkStride(begin, end, step); err != nil {
		return err
	}
	c.seq.SetStride(begin, end, step)
	return nil
}

// ClearStride sets bits begin, begin+step, ... (< end) to 0.
func (c Checked[B]) ClearStride(begin, end, step uint64) error {
	if err := c.checkStride(begin, end, step); err != nil {
		return err
	}
	c.seq.ClearStride(begin, end, step)
	return nil
}

// FlipStride inverts bits begin, begin+step, ... (< end).
func (c Checked[B]) FlipStride(begin, end, step uint64) error {
	if err := c.checkStride(begin, end, step); err != nil {
		return err
	}
	c.seq.FlipStride(begin, end, step)
	return nil
}
