// Package convert moves bits between fixed bitmaps and the general-purpose
// bitmap libraries: RoaringBitmap and bits-and-blooms/bitset.
package convert

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/fixedbitmaps/internal/conv"
)

// Source is any fixed bitmap that can enumerate its set bits.
type Source interface {
	Width() uint
	Ones() iter.Seq[uint]
}

// Target is any fixed bitmap whose bits can be set by index.
// Pointers to the fixedbitmaps and oversized types satisfy it.
type Target interface {
	Width() uint
	Set(index uint, value bool) error
}

// ToRoaring returns a roaring bitmap holding the set bits of src.
func ToRoaring(src Source) (*roaring.Bitmap, error) {
	rb := roaring.New()
	for i := range src.Ones() {
		x, err := conv.UintToUint32(i)
		if err != nil {
			return nil, err
		}
		rb.Add(x)
	}
	return rb, nil
}

// FromRoaring sets in dst every bit present in rb. It fails with an
// *fixedbitmaps.IndexError if rb holds a value at or past dst's width;
// dst may then be partially updated.
func FromRoaring(rb *roaring.Bitmap, dst Target) error {
	it := rb.Iterator()
	for it.HasNext() {
		if err := dst.Set(uint(it.Next()), true); err != nil {
			return fmt.Errorf("convert roaring: %w", err)
		}
	}
	return nil
}

// ToBitSet returns a bitset of length src.Width() holding the set bits of src.
func ToBitSet(src Source) *bitset.BitSet {
	bs := bitset.New(src.Width())
	for i := range src.Ones() {
		bs.Set(i)
	}
	return bs
}

// FromBitSet sets in dst every bit set in bs, with the same failure
// behaviour as FromRoaring.
func FromBitSet(bs *bitset.BitSet, dst Target) error {
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if err := dst.Set(i, true); err != nil {
			return fmt.Errorf("convert bitset: %w", err)
		}
	}
	return nil
}
