package bitseq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitseq"
)

func TestOnes_AscendingOrder(t *testing.T) {
	s := bitseq.FromString[uint8]("0100100100001")

	var got []uint64
	for i := range s.Ones() {
		got = append(got, i)
	}
	assert.Equal(t, []uint64{1, 4, 7, 12}, got)
}

func TestOnes_EarlyBreak(t *testing.T) {
	s := bitseq.NewFilled[uint64](1000, true)

	n := 0
	for range s.Ones() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestBits_VisitsEveryIndex(t *testing.T) {
	s := bitseq.FromString[uint16]("10101")

	var idx []uint64
	var vals []bool
	for i, v := range s.Bits() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	assert.Equal(t, []uint64{0, 1, 2, 3, 4}, idx)
	assert.Equal(t, []bool{true, false, true, false, true}, vals)
}

func TestRef_ReadsAndWritesThroughHandle(t *testing.T) {
	s := bitseq.New[uint8](10)
	r := bitseq.At(s, 3)

	assert.Equal(t, uint64(3), r.Index())
	assert.False(t, r.Get())

	r.Set(true)
	assert.True(t, s.Test(3), "handle writes reach the sequence")

	r.Flip()
	assert.False(t, s.Test(3))

	s.Set(3)
	assert.True(t, r.Get(), "sequence writes are visible through the handle")
	r.Clear()
	assert.False(t, s.Test(3))
}

func TestRef_OnDynamic(t *testing.T) {
	d := bitseq.NewDynamicSize[uint32](8)
	r := bitseq.At[uint32](d, 7)

	r.Set(true)
	assert.True(t, d.Test(7))
}

func TestString_RoundTrip(t *testing.T) {
	const pattern = "001101011100010"

	s := bitseq.FromString[uint8](pattern)
	require.Equal(t, uint64(len(pattern)), s.Len())
	assert.Equal(t, pattern, s.String())
}

func TestFromStringChar_CustomSetCharacter(t *testing.T) {
	s := bitseq.FromStringChar[uint8]("x.x.x", 'x')
	assert.Equal(t, "10101", s.String())
}
