package blockstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitseq/testutil"
)

func TestShiftRight_CarryFormula(t *testing.T) {
	// Two W=8 blocks shifted right by half a block: each destination block
	// combines its displaced source with the carry of the next-higher block.
	s := FromBlocks(16, []uint8{0b10101010, 0b01010101})
	s.ShiftRight(4)
	assert.Equal(t, uint8(0b01011010), s.GetBlock(0))
	assert.Equal(t, uint8(0b00000101), s.GetBlock(1))
}

func TestShift_ZeroIsIdentity(t *testing.T) {
	s := FromBlocks(20, []uint8{0xDE, 0xAD, 0x0B})
	before := s.Clone()

	s.ShiftLeft(0)
	assert.True(t, s.Equal(before))
	s.ShiftRight(0)
	assert.True(t, s.Equal(before))
}

func TestShift_ByLengthOrMoreClears(t *testing.T) {
	for _, amount := range []uint64{20, 21, 1000} {
		s := NewFilled[uint8](20, true)
		s.ShiftLeft(amount)
		assert.True(t, s.None(), "left by %d", amount)

		s = NewFilled[uint8](20, true)
		s.ShiftRight(amount)
		assert.True(t, s.None(), "right by %d", amount)
	}
}

func TestShift_LeftThenRightDiscards(t *testing.T) {
	// A left shift discards the top bits for good; shifting back must not
	// resurrect them.
	const n = 40
	rng := testutil.NewRNG(5)

	for round := 0; round < 50; round++ {
		amount := rng.Uint64n(n)
		m := testutil.NewModel(n)
		rng.FillRandom(m, 0.5)

		s := New[uint8](n)
		for i := uint64(0); i < n; i++ {
			s.SetValue(i, m.Test(i))
		}

		s.ShiftLeft(amount)
		s.ShiftRight(amount)

		for i := uint64(0); i < n; i++ {
			want := m.Test(i) && i < n-amount
			require.Equal(t, want, s.Test(i), "amount %d bit %d", amount, i)
		}
	}
}

func testShiftRandomized[B Block](t *testing.T) {
	rng := testutil.NewRNG(99)
	w := Width[B]()

	for round := 0; round < 150; round++ {
		length := rng.Uint64n(5*w) + 1
		amount := rng.Uint64n(length + w)

		m := testutil.NewModel(length)
		rng.FillRandom(m, 0.5)
		s := New[B](length)
		for i := uint64(0); i < length; i++ {
			s.SetValue(i, m.Test(i))
		}

		if round%2 == 0 {
			s.ShiftLeft(amount)
			m.ShiftLeft(amount)
		} else {
			s.ShiftRight(amount)
			m.ShiftRight(amount)
		}
		requireMatchesModel(t, s, m)
	}
}

func TestShift_RandomizedAllWidths(t *testing.T) {
	t.Run("uint8", testShiftRandomized[uint8])
	t.Run("uint16", testShiftRandomized[uint16])
	t.Run("uint32", testShiftRandomized[uint32])
	t.Run("uint64", testShiftRandomized[uint64])
}

func TestShifted_AllocatingLeavesSourceIntact(t *testing.T) {
	s := FromBlocks(16, []uint8{0xFF, 0x00})
	r := s.ShiftedLeft(4)

	assert.Equal(t, uint8(0xFF), s.GetBlock(0), "source untouched")
	assert.Equal(t, uint8(0xF0), r.GetBlock(0))
	assert.Equal(t, uint8(0x0F), r.GetBlock(1))

	r2 := s.ShiftedRight(4)
	assert.Equal(t, uint8(0x0F), r2.GetBlock(0))
	assert.Equal(t, uint8(0x00), r2.GetBlock(1))
}

func TestShiftLeft_PartialBlockDiscards(t *testing.T) {
	// N=12, P=4: bits pushed past N must vanish, filler must stay zero.
	s := NewFilled[uint8](12, true)
	s.ShiftLeft(8)

	assert.Equal(t, uint64(4), s.Count())
	assert.Equal(t, uint8(0), s.GetBlock(0))
	assert.Equal(t, uint8(0x0F), s.GetBlock(1))
	assert.False(t, s.All())
}

func TestRotate_WrapsInsteadOfDiscarding(t *testing.T) {
	rng := testutil.NewRNG(17)

	for _, length := range []uint64{1, 7, 8, 12, 20, 64, 65, 130} {
		for round := 0; round < 10; round++ {
			amount := rng.Uint64n(2*length + 1)

			m := testutil.NewModel(length)
			rng.FillRandom(m, 0.5)
			s := New[uint8](length)
			for i := uint64(0); i < length; i++ {
				s.SetValue(i, m.Test(i))
			}

			count := s.Count()
			s.RotateLeft(amount)
			m.RotateLeft(amount)
			requireMatchesModel(t, s, m)
			assert.Equal(t, count, s.Count(), "rotation preserves population")
		}
	}
}

func TestRotate_RightInvertsLeft(t *testing.T) {
	s := FromBlocks(20, []uint8{0xB7, 0x1E, 0x05})
	before := s.Clone()

	s.RotateLeft(13)
	s.RotateRight(13)
	assert.True(t, s.Equal(before))
}
