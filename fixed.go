package fixedbitmaps

import (
	"cmp"
	"fmt"
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Fixed is a bitmap of exactly as many bits as its backing unsigned integer T.
//
// Bit 0 is the least significant bit of the backing integer. The zero value
// is the empty bitmap. Fixed is a plain value: copies are independent and
// two bitmaps are equal with == when their backing integers are equal.
//
// Arithmetic wraps modulo 2^W and shifting by W or more bits yields zero.
type Fixed[T constraints.Unsigned] struct {
	v T
}

// Named widths.
type (
	Bitmap8    = Fixed[uint8]
	Bitmap16   = Fixed[uint16]
	Bitmap32   = Fixed[uint32]
	Bitmap64   = Fixed[uint64]
	BitmapArch = Fixed[uint]
)

func widthOf[T constraints.Unsigned]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// New returns an empty bitmap.
func New[T constraints.Unsigned]() Fixed[T] {
	return Fixed[T]{}
}

// From wraps v bit for bit.
func From[T constraints.Unsigned](v T) Fixed[T] {
	return Fixed[T]{v: v}
}

// FromSet returns a bitmap with only the bit at index set.
func FromSet[T constraints.Unsigned](index uint) (Fixed[T], error) {
	var b Fixed[T]
	if err := b.Set(index, true); err != nil {
		return Fixed[T]{}, err
	}
	return b, nil
}

// Filled returns a bitmap with every bit set to value.
func Filled[T constraints.Unsigned](value bool) Fixed[T] {
	if value {
		return Fixed[T]{v: ^T(0)}
	}
	return Fixed[T]{}
}

// Mask returns a bitmap whose bits in [begin, end) are value and all other
// bits are !value. end is clamped to the width; an empty range (begin past
// the width, end of zero, or end <= begin) yields the all-!value bitmap.
func Mask[T constraints.Unsigned](begin, end uint, value bool) Fixed[T] {
	w := widthOf[T]()
	var m T
	if begin < w && end > begin {
		end = min(end, w)
		m = (^T(0) << begin) & (^T(0) >> (w - end))
	}
	if !value {
		m = ^m
	}
	return Fixed[T]{v: m}
}

// Width returns the number of bits in the bitmap.
func (b Fixed[T]) Width() uint {
	return widthOf[T]()
}

// Value returns the backing integer.
func (b Fixed[T]) Value() T {
	return b.v
}

// Get returns the bit at index.
func (b Fixed[T]) Get(index uint) (bool, error) {
	if err := CheckIndex(index, b.Width()); err != nil {
		return false, err
	}
	return b.v>>index&1 == 1, nil
}

// Set sets the bit at index to value. On error the bitmap is unchanged.
func (b *Fixed[T]) Set(index uint, value bool) error {
	if err := CheckIndex(index, b.Width()); err != nil {
		return err
	}
	if value {
		b.v |= T(1) << index
	} else {
		b.v &^= T(1) << index
	}
	return nil
}

// SetRange sets the bits in [begin, end) to value, leaving the rest untouched.
// Out-of-range portions of the interval are ignored.
func (b *Fixed[T]) SetRange(begin, end uint, value bool) {
	if value {
		b.v |= Mask[T](begin, end, true).v
	} else {
		b.v &= Mask[T](begin, end, false).v
	}
}

func (b Fixed[T]) And(o Fixed[T]) Fixed[T] { return Fixed[T]{v: b.v & o.v} }

func (b Fixed[T]) Or(o Fixed[T]) Fixed[T] { return Fixed[T]{v: b.v | o.v} }

func (b Fixed[T]) Xor(o Fixed[T]) Fixed[T] { return Fixed[T]{v: b.v ^ o.v} }

func (b Fixed[T]) AndValue(v T) Fixed[T] { return Fixed[T]{v: b.v & v} }

func (b Fixed[T]) OrValue(v T) Fixed[T] { return Fixed[T]{v: b.v | v} }

func (b Fixed[T]) XorValue(v T) Fixed[T] { return Fixed[T]{v: b.v ^ v} }

// Not flips every bit.
func (b Fixed[T]) Not() Fixed[T] { return Fixed[T]{v: ^b.v} }

// Add returns b+o, wrapping on overflow.
func (b Fixed[T]) Add(o Fixed[T]) Fixed[T] { return Fixed[T]{v: b.v + o.v} }

// Sub returns b-o, wrapping on underflow.
func (b Fixed[T]) Sub(o Fixed[T]) Fixed[T] { return Fixed[T]{v: b.v - o.v} }

// Mul returns b*o, wrapping on overflow.
func (b Fixed[T]) Mul(o Fixed[T]) Fixed[T] { return Fixed[T]{v: b.v * o.v} }

// Div returns b/o truncated, or ErrDivisionByZero.
func (b Fixed[T]) Div(o Fixed[T]) (Fixed[T], error) { return b.DivValue(o.v) }

func (b Fixed[T]) AddValue(v T) Fixed[T] { return Fixed[T]{v: b.v + v} }

func (b Fixed[T]) SubValue(v T) Fixed[T] { return Fixed[T]{v: b.v - v} }

func (b Fixed[T]) MulValue(v T) Fixed[T] { return Fixed[T]{v: b.v * v} }

func (b Fixed[T]) DivValue(v T) (Fixed[T], error) {
	if v == 0 {
		return Fixed[T]{}, ErrDivisionByZero
	}
	return Fixed[T]{v: b.v / v}, nil
}

// Shl shifts left by n bits. n >= Width yields the empty bitmap.
func (b Fixed[T]) Shl(n uint) Fixed[T] { return Fixed[T]{v: b.v << n} }

// Shr shifts right by n bits. n >= Width yields the empty bitmap.
func (b Fixed[T]) Shr(n uint) Fixed[T] { return Fixed[T]{v: b.v >> n} }

// Count returns the number of set bits.
func (b Fixed[T]) Count() int {
	return bits.OnesCount64(uint64(b.v))
}

// Ones yields the indices of the set bits in ascending order.
func (b Fixed[T]) Ones() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		v := uint64(b.v)
		for v != 0 {
			if !yield(uint(bits.TrailingZeros64(v))) {
				return
			}
			v &= v - 1
		}
	}
}

func (b Fixed[T]) Equal(o Fixed[T]) bool { return b.v == o.v }

// Compare orders bitmaps by their backing integers and returns -1, 0 or +1.
func (b Fixed[T]) Compare(o Fixed[T]) int { return cmp.Compare(b.v, o.v) }

func (b Fixed[T]) Less(o Fixed[T]) bool { return b.v < o.v }

// String renders every bit, most significant first, as '0' or '1'.
func (b Fixed[T]) String() string {
	return fmt.Sprintf("%0*b", int(b.Width()), uint64(b.v))
}
