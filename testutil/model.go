package testutil

import "strings"

// Model is the reference implementation: a plain []bool with every
// operation written as the obvious per-bit loop. It has no blocks, no
// masks and no carries, which is exactly what makes it a trustworthy
// oracle for the block-level engine.
type Model struct {
	bits []bool
}

// NewModel creates a zeroed model of n bits.
func NewModel(n uint64) *Model {
	return &Model{bits: make([]bool, n)}
}

// Len returns the bit length.
func (m *Model) Len() uint64 { return uint64(len(m.bits)) }

// Test reports whether bit i is set.
func (m *Model) Test(i uint64) bool { return m.bits[i] }

// Set sets bit i.
func (m *Model) Set(i uint64) { m.bits[i] = true }

// Clear clears bit i.
func (m *Model) Clear(i uint64) { m.bits[i] = false }

// Flip inverts bit i.
func (m *Model) Flip(i uint64) { m.bits[i] = !m.bits[i] }

// SetValue sets bit i to v.
func (m *Model) SetValue(i uint64, v bool) { m.bits[i] = v }

// SetRange sets bits [begin, end).
func (m *Model) SetRange(begin, end uint64) {
	for i := begin; i < end; i++ {
		m.bits[i] = true
	}
}

// ClearRange clears bits [begin, end).
func (m *Model) ClearRange(begin, end uint64) {
	for i := begin; i < end; i++ {
		m.bits[i] = false
	}
}

// FlipRange inverts bits [begin, end).
func (m *Model) FlipRange(begin, end uint64) {
	for i := begin; i < end; i++ {
		m.bits[i] = !m.bits[i]
	}
}

// SetStride sets bits begin, begin+step, ... (< end).
func (m *Model) SetStride(begin, end, step uint64) {
	for i := begin; i < end; i += step {
		m.bits[i] = true
	}
}

// ClearStride clears bits begin, begin+step, ... (< end).
func (m *Model) ClearStride(begin, end, step uint64) {
	for i := begin; i < end; i += step {
		m.bits[i] = false
	}
}

// FlipStride inverts bits begin, begin+step, ... (< end).
func (m *Model) FlipStride(begin, end, step uint64) {
	for i := begin; i < end; i += step {
		m.bits[i] = !m.bits[i]
	}
}

// ShiftLeft moves every bit toward higher indices; vacated bits are zero.
func (m *Model) ShiftLeft(amount uint64) {
	n := m.Len()
	for i := n; i > 0; {
		i--
		if i >= amount {
			m.bits[i] = m.bits[i-amount]
		} else {
			m.bits[i] = false
		}
	}
}

// ShiftRight moves every bit toward lower indices; vacated bits are zero.
func (m *Model) ShiftRight(amount uint64) {
	n := m.Len()
	for i := uint64(0); i < n; i++ {
		if i+amount < n {
			m.bits[i] = m.bits[i+amount]
		} else {
			m.bits[i] = false
		}
	}
}

// RotateLeft moves every bit toward higher indices, wrapping around.
func (m *Model) RotateLeft(amount uint64) {
	n := m.Len()
	if n == 0 {
		return
	}
	amount %= n
	rotated := make([]bool, n)
	for i := uint64(0); i < n; i++ {
		rotated[(i+amount)%n] = m.bits[i]
	}
	m.bits = rotated
}

// Count returns the number of set bits.
func (m *Model) Count() uint64 {
	var n uint64
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// String renders the model as '0'/'1', lowest index first.
func (m *Model) String() string {
	var sb strings.Builder
	sb.Grow(len(m.bits))
	for _, b := range m.bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
