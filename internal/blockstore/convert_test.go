package blockstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitseq/testutil"
)

func TestInteger_LittleBlockEndian(t *testing.T) {
	s := New[uint8](32)
	FromInteger(s, uint32(0xCAFEBABE))

	// block 0 is least significant
	assert.Equal(t, uint8(0xBE), s.GetBlock(0))
	assert.Equal(t, uint8(0xBA), s.GetBlock(1))
	assert.Equal(t, uint8(0xFE), s.GetBlock(2))
	assert.Equal(t, uint8(0xCA), s.GetBlock(3))

	assert.Equal(t, uint32(0xCAFEBABE), ToInteger[uint32](s))
}

func TestInteger_NarrowerThanBlock(t *testing.T) {
	s := New[uint64](64)
	FromInteger(s, uint8(0xA5))

	assert.Equal(t, uint64(0xA5), s.GetBlock(0))
	assert.Equal(t, uint8(0xA5), ToInteger[uint8](s))
	assert.Equal(t, uint64(0xA5), ToInteger[uint64](s))
}

func TestInteger_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(3)

	for round := 0; round < 100; round++ {
		v := rng.Uint64n(1 << 62)

		s8 := New[uint8](64)
		FromInteger(s8, v)
		require.Equal(t, v, ToInteger[uint64](s8))

		s16 := New[uint16](64)
		FromInteger(s16, v)
		require.Equal(t, v, ToInteger[uint64](s16))

		s64 := New[uint64](64)
		FromInteger(s64, v)
		require.Equal(t, v, ToInteger[uint64](s64))
	}
}

func TestInteger_TruncatesToLength(t *testing.T) {
	// N=12 keeps only the low 12 bits of the assigned value.
	s := New[uint8](12)
	FromInteger(s, uint16(0xFFFF))

	assert.Equal(t, uint64(12), s.Count())
	assert.Equal(t, uint16(0x0FFF), ToInteger[uint16](s))
}

func TestInteger_OverwritesPreviousContent(t *testing.T) {
	s := New[uint8](32)
	s.Fill(true)
	FromInteger(s, uint16(0x0001))

	assert.Equal(t, uint64(1), s.Count())
	assert.Equal(t, uint32(1), ToInteger[uint32](s))
}

func TestConvert_WideningAssemblesBlocks(t *testing.T) {
	src := FromBlocks(32, []uint8{0xBE, 0xBA, 0xFE, 0xCA})

	dst := Convert[uint32](src, 32)
	require.Equal(t, uint64(1), dst.BlockCount())
	assert.Equal(t, uint32(0xCAFEBABE), dst.GetBlock(0))
}

func TestConvert_NarrowingSplitsBlocks(t *testing.T) {
	src := FromBlocks(32, []uint32{0xCAFEBABE})

	dst := Convert[uint8](src, 32)
	require.Equal(t, uint64(4), dst.BlockCount())
	assert.Equal(t, uint8(0xBE), dst.GetBlock(0))
	assert.Equal(t, uint8(0xBA), dst.GetBlock(1))
	assert.Equal(t, uint8(0xFE), dst.GetBlock(2))
	assert.Equal(t, uint8(0xCA), dst.GetBlock(3))
}

func TestConvert_PreservesEveryBit(t *testing.T) {
	rng := testutil.NewRNG(21)

	for _, length := range []uint64{1, 13, 16, 60, 64, 100, 257} {
		m := testutil.NewModel(length)
		rng.FillRandom(m, 0.5)
		src := New[uint16](length)
		for i := uint64(0); i < length; i++ {
			src.SetValue(i, m.Test(i))
		}

		wide := Convert[uint64](src, length)
		requireMatchesModel(t, wide, m)

		narrow := Convert[uint8](src, length)
		requireMatchesModel(t, narrow, m)

		same := Convert[uint16](src, length)
		requireMatchesModel(t, same, m)
	}
}

func TestConvert_TruncateAndZeroFill(t *testing.T) {
	src := NewFilled[uint8](24, true)

	short := Convert[uint16](src, 10)
	assert.Equal(t, uint64(10), short.Len())
	assert.True(t, short.All(), "truncation keeps the low bits")

	long := Convert[uint16](src, 50)
	assert.Equal(t, uint64(50), long.Len())
	assert.Equal(t, uint64(24), long.Count())
	assert.False(t, long.Test(24), "destination surplus is zero-filled")
	assert.False(t, long.Test(49))
}

func TestConvert_EmptySource(t *testing.T) {
	src := New[uint8](0)
	dst := Convert[uint64](src, 0)
	assert.Equal(t, uint64(0), dst.Len())
	assert.Equal(t, uint64(0), ToInteger[uint64](dst))
}
