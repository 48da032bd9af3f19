package fixedbitmaps

import (
	"fmt"
	"iter"
	"math/bits"

	"lukechampine.com/uint128"
)

// Uint128 is the backing integer of Bitmap128.
type Uint128 = uint128.Uint128

// Width128 is the number of bits in a Bitmap128.
const Width128 = 128

// Bitmap128 is the 128-bit member of the family. It exposes the same
// operations as Fixed, with arithmetic wrapping modulo 2^128.
type Bitmap128 struct {
	v Uint128
}

// From128 wraps v bit for bit.
func From128(v Uint128) Bitmap128 {
	return Bitmap128{v: v}
}

// FromSet128 returns a Bitmap128 with only the bit at index set.
func FromSet128(index uint) (Bitmap128, error) {
	var b Bitmap128
	if err := b.Set(index, true); err != nil {
		return Bitmap128{}, err
	}
	return b, nil
}

// Filled128 returns a Bitmap128 with every bit set to value.
func Filled128(value bool) Bitmap128 {
	if value {
		return Bitmap128{v: uint128.Max}
	}
	return Bitmap128{}
}

// Mask128 is the 128-bit counterpart of Mask.
func Mask128(begin, end uint, value bool) Bitmap128 {
	var m Uint128
	if begin < Width128 && end > begin {
		end = min(end, Width128)
		m = uint128.Max.Lsh(begin).And(uint128.Max.Rsh(Width128 - end))
	}
	if !value {
		m = not128(m)
	}
	return Bitmap128{v: m}
}

func (b Bitmap128) Width() uint { return Width128 }

func (b Bitmap128) Value() Uint128 { return b.v }

func (b Bitmap128) Get(index uint) (bool, error) {
	if err := CheckIndex(index, Width128); err != nil {
		return false, err
	}
	return b.v.Rsh(index).Lo&1 == 1, nil
}

func (b *Bitmap128) Set(index uint, value bool) error {
	if err := CheckIndex(index, Width128); err != nil {
		return err
	}
	bit := uint128.From64(1).Lsh(index)
	if value {
		b.v = b.v.Or(bit)
	} else {
		b.v = b.v.And(not128(bit))
	}
	return nil
}

func (b *Bitmap128) SetRange(begin, end uint, value bool) {
	if value {
		b.v = b.v.Or(Mask128(begin, end, true).v)
	} else {
		b.v = b.v.And(Mask128(begin, end, false).v)
	}
}

func (b Bitmap128) And(o Bitmap128) Bitmap128 { return Bitmap128{v: b.v.And(o.v)} }

func (b Bitmap128) Or(o Bitmap128) Bitmap128 { return Bitmap128{v: b.v.Or(o.v)} }

func (b Bitmap128) Xor(o Bitmap128) Bitmap128 { return Bitmap128{v: b.v.Xor(o.v)} }

func (b Bitmap128) AndValue(v Uint128) Bitmap128 { return Bitmap128{v: b.v.And(v)} }

func (b Bitmap128) OrValue(v Uint128) Bitmap128 { return Bitmap128{v: b.v.Or(v)} }

func (b Bitmap128) XorValue(v Uint128) Bitmap128 { return Bitmap128{v: b.v.Xor(v)} }

func (b Bitmap128) Not() Bitmap128 { return Bitmap128{v: not128(b.v)} }

func (b Bitmap128) Add(o Bitmap128) Bitmap128 { return Bitmap128{v: b.v.AddWrap(o.v)} }

func (b Bitmap128) Sub(o Bitmap128) Bitmap128 { return Bitmap128{v: b.v.SubWrap(o.v)} }

func (b Bitmap128) Mul(o Bitmap128) Bitmap128 { return Bitmap128{v: b.v.MulWrap(o.v)} }

func (b Bitmap128) Div(o Bitmap128) (Bitmap128, error) { return b.DivValue(o.v) }

func (b Bitmap128) AddValue(v Uint128) Bitmap128 { return Bitmap128{v: b.v.AddWrap(v)} }

func (b Bitmap128) SubValue(v Uint128) Bitmap128 { return Bitmap128{v: b.v.SubWrap(v)} }

func (b Bitmap128) MulValue(v Uint128) Bitmap128 { return Bitmap128{v: b.v.MulWrap(v)} }

func (b Bitmap128) DivValue(v Uint128) (Bitmap128, error) {
	if v.IsZero() {
		return Bitmap128{}, ErrDivisionByZero
	}
	return Bitmap128{v: b.v.Div(v)}, nil
}

// Shl shifts left by n bits. n >= 128 yields the empty bitmap.
func (b Bitmap128) Shl(n uint) Bitmap128 {
	if n >= Width128 {
		return Bitmap128{}
	}
	return Bitmap128{v: b.v.Lsh(n)}
}

// Shr shifts right by n bits. n >= 128 yields the empty bitmap.
func (b Bitmap128) Shr(n uint) Bitmap128 {
	if n >= Width128 {
		return Bitmap128{}
	}
	return Bitmap128{v: b.v.Rsh(n)}
}

func (b Bitmap128) Count() int { return b.v.OnesCount() }

func (b Bitmap128) Ones() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for base, w := range [2]uint64{b.v.Lo, b.v.Hi} {
			for w != 0 {
				if !yield(uint(base*64 + bits.TrailingZeros64(w))) {
					return
				}
				w &= w - 1
			}
		}
	}
}

func (b Bitmap128) Equal(o Bitmap128) bool { return b.v.Equals(o.v) }

func (b Bitmap128) Compare(o Bitmap128) int { return b.v.Cmp(o.v) }

func (b Bitmap128) Less(o Bitmap128) bool { return b.v.Cmp(o.v) < 0 }

func (b Bitmap128) String() string {
	return fmt.Sprintf("%064b%064b", b.v.Hi, b.v.Lo)
}

func not128(u Uint128) Uint128 {
	return uint128.New(^u.Lo, ^u.Hi)
}
