package oversized

import (
	"bytes"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fixedbitmaps"
	"github.com/hupe1980/fixedbitmaps/testutil"
)

func TestWidths(t *testing.T) {
	assert.Equal(t, uint(256), Bitmap256{}.Width())
	assert.Equal(t, uint(512), Bitmap512{}.Width())
	assert.Equal(t, uint(1024), Bitmap1024{}.Width())
	assert.Equal(t, uint(2048), Bitmap2048{}.Width())
	assert.Equal(t, uint(4096), Bitmap4096{}.Width())
	assert.Equal(t, uint(8192), BitmapKB{}.Width())
}

func TestDefaultIsEmpty(t *testing.T) {
	var b BitmapKB
	assert.Equal(t, [128]uint64{}, b.Words())
	assert.Equal(t, 0, b.Count())
}

func TestSetGet(t *testing.T) {
	rng := testutil.NewRNG(4711)
	var b Bitmap1024

	for range 200 {
		i := rng.Index(Bitmap1024Width)
		require.NoError(t, b.Set(i, true))
		ok, err := b.Get(i)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, b.Set(i, false))
		ok, err = b.Get(i)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	_, err := b.Get(Bitmap1024Width)
	assert.ErrorIs(t, err, fixedbitmaps.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(5000, true), fixedbitmaps.ErrIndexOutOfRange)

	_, err = FromSet256(256)
	assert.ErrorIs(t, err, fixedbitmaps.ErrIndexOutOfRange)
}

func TestFromSet(t *testing.T) {
	b, err := FromSet256(3)
	require.NoError(t, err)
	assert.Equal(t, Bitmap256([4]uint64{0, 0, 0, 0b1000}), b)

	b, err = FromSet256(255)
	require.NoError(t, err)
	assert.Equal(t, Bitmap256([4]uint64{1 << 63, 0, 0, 0}), b)
}

func TestFromWords(t *testing.T) {
	w := [4]uint64{1 << 63, 0, 0, 1}
	b := FromWords256(w)

	assert.Equal(t, w, b.Words())
	for _, i := range []uint{0, 255} {
		got, err := b.Get(i)
		require.NoError(t, err)
		assert.True(t, got, "bit %d", i)
	}
	assert.Equal(t, 2, b.Count())
}

func TestEquality(t *testing.T) {
	var a, b, c BitmapKB
	for _, i := range []uint{1054, 1000} {
		require.NoError(t, a.Set(i, true))
		require.NoError(t, b.Set(i, true))
	}
	require.NoError(t, c.Set(1054, true))

	assert.True(t, a == b)
	assert.False(t, a == c)
}

func TestBitwise(t *testing.T) {
	rng := testutil.NewRNG(42)

	var x, y [8]uint64
	rng.FillWords(x[:])
	rng.FillWords(y[:])
	a, b := Bitmap512(x), Bitmap512(y)

	and, or, xor := a.And(b), a.Or(b), a.Xor(b)
	for i := range x {
		assert.Equal(t, x[i]&y[i], and[i])
		assert.Equal(t, x[i]|y[i], or[i])
		assert.Equal(t, x[i]^y[i], xor[i])
	}

	assert.Equal(t, and, a.AndWords(y))
	assert.Equal(t, or, a.OrWords(y))
	assert.Equal(t, xor, a.XorWords(y))
	assert.Equal(t, a, a.Not().Not())
	assert.Equal(t, Filled512(true), Bitmap512{}.Not())

	// Operations return copies.
	assert.Equal(t, Bitmap512(x), a)
}

func TestAddWord(t *testing.T) {
	var words [128]uint64
	words[127] = math.MaxUint64
	b := BitmapKB(words)

	b = b.AddWord(1)
	assert.Equal(t, uint64(1), b[126])
	assert.Equal(t, uint64(0), b[127])

	b = b.AddWord(math.MaxUint64)
	assert.Equal(t, uint64(1), b[126])
	assert.Equal(t, uint64(math.MaxUint64), b[127])

	b = b.AddWord(1)
	assert.Equal(t, uint64(2), b[126])
	assert.Equal(t, uint64(0), b[127])
}

func TestAddWordOverflowLogs(t *testing.T) {
	t.Cleanup(func() { fixedbitmaps.SetLogger(nil) })

	var buf bytes.Buffer
	fixedbitmaps.SetLogger(fixedbitmaps.NewLogger(slog.NewTextHandler(&buf, nil)))

	b := Filled256(true).AddWord(1)
	assert.Equal(t, Bitmap256{}, b)
	assert.Contains(t, buf.String(), "bitmap arithmetic overflowed")
	assert.Contains(t, buf.String(), "width=256")

	buf.Reset()
	_ = Bitmap256{}.AddWord(1)
	assert.Empty(t, buf.String())
}

func TestOnes(t *testing.T) {
	var b Bitmap2048
	for _, i := range []uint{2047, 0, 64, 63, 1000} {
		require.NoError(t, b.Set(i, true))
	}

	assert.Equal(t, []uint{0, 63, 64, 1000, 2047}, slices.Collect(b.Ones()))
	assert.Equal(t, 5, b.Count())
}

func TestString(t *testing.T) {
	b, err := FromSet256(4)
	require.NoError(t, err)

	want := strings.Repeat("0000000000000000_", 3) + "0000000000000010"
	assert.Equal(t, want, b.String())
	assert.Len(t, Bitmap4096{}.String(), 64*16+63)
}

func TestOrdering(t *testing.T) {
	low, err := FromSet512(63)
	require.NoError(t, err)
	high, err := FromSet512(64)
	require.NoError(t, err)
	top, err := FromSet512(511)
	require.NoError(t, err)

	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, top.Compare(Filled512(true).Xor(top)))
	assert.Equal(t, 0, high.Compare(high))
	assert.True(t, Bitmap512{}.Less(low))

	sorted := []Bitmap512{top, Bitmap512{}, high, low}
	slices.SortFunc(sorted, Bitmap512.Compare)
	assert.Equal(t, []Bitmap512{{}, low, high, top}, sorted)

	// Ordering follows the number held, so AddWord moves a bitmap up.
	var b BitmapKB
	assert.True(t, b.Less(b.AddWord(1)))
}
