package words

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fixedbitmaps"
)

func TestLayout(t *testing.T) {
	w := make([]uint64, 4)

	require.NoError(t, Set(w, 0, true))
	require.NoError(t, Set(w, 255, true))
	require.NoError(t, Set(w, 65, true))

	assert.Equal(t, []uint64{1 << 63, 0, 1 << 1, 1}, w)
	assert.Equal(t, []uint{0, 65, 255}, slices.Collect(Ones(w)))
	assert.Equal(t, 3, Count(w))

	ok, err := Get(w, 65)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, Set(w, 65, false))
	ok, err = Get(w, 65)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBounds(t *testing.T) {
	w := make([]uint64, 2)

	_, err := Get(w, 128)
	assert.ErrorIs(t, err, fixedbitmaps.ErrIndexOutOfRange)
	assert.ErrorIs(t, Set(w, 200, true), fixedbitmaps.ErrIndexOutOfRange)
	assert.Equal(t, []uint64{0, 0}, w)
}

func TestAddWord(t *testing.T) {
	t.Run("no carry", func(t *testing.T) {
		w := []uint64{0, 5}
		assert.False(t, AddWord(w, 3))
		assert.Equal(t, []uint64{0, 8}, w)
	})

	t.Run("carry into next word", func(t *testing.T) {
		w := []uint64{0, math.MaxUint64}
		assert.False(t, AddWord(w, 1))
		assert.Equal(t, []uint64{1, 0}, w)
	})

	t.Run("carry chain", func(t *testing.T) {
		w := []uint64{0, math.MaxUint64, math.MaxUint64}
		assert.False(t, AddWord(w, 2))
		assert.Equal(t, []uint64{1, 0, 1}, w)
	})

	t.Run("overflow wraps", func(t *testing.T) {
		w := []uint64{math.MaxUint64, math.MaxUint64}
		assert.True(t, AddWord(w, 1))
		assert.Equal(t, []uint64{0, 0}, w)
	})
}

func TestBitwise(t *testing.T) {
	a := []uint64{0b1100, 0xF0}
	And(a, []uint64{0b1010, 0xFF})
	assert.Equal(t, []uint64{0b1000, 0xF0}, a)

	Or(a, []uint64{0b0001, 0x0F})
	assert.Equal(t, []uint64{0b1001, 0xFF}, a)

	Xor(a, []uint64{0b1001, 0x01})
	assert.Equal(t, []uint64{0, 0xFE}, a)

	Not(a)
	assert.Equal(t, []uint64{math.MaxUint64, ^uint64(0xFE)}, a)

	Fill(a, false)
	assert.Equal(t, []uint64{0, 0}, a)
	Fill(a, true)
	assert.Equal(t, 128, Count(a))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "000000000000000A_FFFFFFFFFFFFFFFF", Format([]uint64{10, math.MaxUint64}))
	assert.Equal(t, "0000000000000000", Format([]uint64{0}))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		w, o []uint64
		want int
	}{
		{"equal", []uint64{1, 2}, []uint64{1, 2}, 0},
		{"high word decides", []uint64{1, 0}, []uint64{0, math.MaxUint64}, 1},
		{"low word decides", []uint64{3, 4}, []uint64{3, 5}, -1},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.w, tt.o))
			assert.Equal(t, -tt.want, Compare(tt.o, tt.w))
		})
	}
}
