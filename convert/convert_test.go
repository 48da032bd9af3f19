package convert

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fixedbitmaps"
	"github.com/hupe1980/fixedbitmaps/oversized"
	"github.com/hupe1980/fixedbitmaps/testutil"
)

func TestRoaringRoundTrip(t *testing.T) {
	t.Run("native width", func(t *testing.T) {
		in := fixedbitmaps.From[uint16](0b1000_0000_0010_0101)

		rb, err := ToRoaring(in)
		require.NoError(t, err)
		assert.Equal(t, []uint32{0, 2, 5, 15}, rb.ToArray())

		var out fixedbitmaps.Bitmap16
		require.NoError(t, FromRoaring(rb, &out))
		assert.Equal(t, in, out)
	})

	t.Run("128 bits", func(t *testing.T) {
		in := fixedbitmaps.From128(fixedbitmaps.Uint128{Hi: 1 << 63, Lo: 1})

		rb, err := ToRoaring(in)
		require.NoError(t, err)
		assert.Equal(t, []uint32{0, 127}, rb.ToArray())

		var out fixedbitmaps.Bitmap128
		require.NoError(t, FromRoaring(rb, &out))
		assert.Equal(t, in, out)
	})

	t.Run("oversized", func(t *testing.T) {
		var in oversized.BitmapKB
		for _, i := range []uint{1, 4000, 8191} {
			require.NoError(t, in.Set(i, true))
		}

		rb, err := ToRoaring(in)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), rb.GetCardinality())

		var out oversized.BitmapKB
		require.NoError(t, FromRoaring(rb, &out))
		assert.Equal(t, in, out)
	})
}

func TestFromRoaringOutOfRange(t *testing.T) {
	rb := roaring.BitmapOf(1, 8)

	var out fixedbitmaps.Bitmap8
	err := FromRoaring(rb, &out)
	assert.ErrorIs(t, err, fixedbitmaps.ErrIndexOutOfRange)

	var ie *fixedbitmaps.IndexError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, uint(8), ie.Index)
}

func TestBitSetRoundTrip(t *testing.T) {
	in, err := fixedbitmaps.FromSet[uint64](63)
	require.NoError(t, err)
	in = in.OrValue(0b101)

	bs := ToBitSet(in)
	assert.Equal(t, uint(64), bs.Len())
	assert.Equal(t, uint(3), bs.Count())
	assert.True(t, bs.Test(63))
	assert.True(t, bs.Test(2))
	assert.False(t, bs.Test(1))

	var out fixedbitmaps.Bitmap64
	require.NoError(t, FromBitSet(bs, &out))
	assert.Equal(t, in, out)
}

func TestFromBitSetOutOfRange(t *testing.T) {
	bs := bitset.New(300)
	bs.Set(299)

	var out oversized.Bitmap256
	assert.ErrorIs(t, FromBitSet(bs, &out), fixedbitmaps.ErrIndexOutOfRange)
}

func TestRandomRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	var in oversized.Bitmap4096
	for i, set := range rng.Bits(oversized.Bitmap4096Width, 0.1) {
		if set {
			require.NoError(t, in.Set(uint(i), true))
		}
	}

	rb, err := ToRoaring(in)
	require.NoError(t, err)
	assert.Equal(t, uint64(in.Count()), rb.GetCardinality())

	bs := ToBitSet(in)
	assert.Equal(t, uint(in.Count()), bs.Count())

	var fromRoaring, fromBitSet oversized.Bitmap4096
	require.NoError(t, FromRoaring(rb, &fromRoaring))
	require.NoError(t, FromBitSet(bs, &fromBitSet))
	assert.Equal(t, in, fromRoaring)
	assert.Equal(t, in, fromBitSet)
}
