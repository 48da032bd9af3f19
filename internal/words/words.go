// Package words implements bit operations over fixed word arrays, shared by
// the generated oversized bitmap types.
//
// Layout: element 0 holds the most significant 64 bits, so bit i lives in
// element len-1-i/64 at offset i%64.
package words

import (
	"cmp"
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/hupe1980/fixedbitmaps"
)

// WordBits is the number of bits per word.
const WordBits = 64

// Width returns the number of bits held by w.
func Width(w []uint64) uint {
	return uint(len(w)) * WordBits
}

func locate(w []uint64, index uint) (int, uint64) {
	return len(w) - 1 - int(index/WordBits), uint64(1) << (index % WordBits)
}

// Get returns bit index of w.
func Get(w []uint64, index uint) (bool, error) {
	if err := fixedbitmaps.CheckIndex(index, Width(w)); err != nil {
		return false, err
	}
	el, mask := locate(w, index)
	return w[el]&mask != 0, nil
}

// Set sets bit index of w to value. w is unchanged on error.
func Set(w []uint64, index uint, value bool) error {
	if err := fixedbitmaps.CheckIndex(index, Width(w)); err != nil {
		return err
	}
	el, mask := locate(w, index)
	if value {
		w[el] |= mask
	} else {
		w[el] &^= mask
	}
	return nil
}

// Fill sets every word of w to all ones or all zeros.
func Fill(w []uint64, value bool) {
	var v uint64
	if value {
		v = ^uint64(0)
	}
	for i := range w {
		w[i] = v
	}
}

// And stores w & o into w.
func And(w, o []uint64) {
	for i := range w {
		w[i] &= o[i]
	}
}

// Or stores w | o into w.
func Or(w, o []uint64) {
	for i := range w {
		w[i] |= o[i]
	}
}

// Xor stores w ^ o into w.
func Xor(w, o []uint64) {
	for i := range w {
		w[i] ^= o[i]
	}
}

// Not flips every bit of w.
func Not(w []uint64) {
	for i := range w {
		w[i] = ^w[i]
	}
}

// AddWord adds x to the number held by w, propagating the carry from the
// least significant element. It reports whether a carry fell off the top,
// in which case w has wrapped modulo 2^Width.
func AddWord(w []uint64, x uint64) bool {
	carry := x
	for i := len(w) - 1; i >= 0 && carry != 0; i-- {
		w[i], carry = bits.Add64(w[i], carry, 0)
	}
	return carry != 0
}

// Compare orders w and o, which must have the same length, by the number
// they hold and returns -1, 0 or +1.
func Compare(w, o []uint64) int {
	for i := range w {
		if c := cmp.Compare(w[i], o[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Count returns the number of set bits.
func Count(w []uint64) int {
	n := 0
	for _, v := range w {
		n += bits.OnesCount64(v)
	}
	return n
}

// Ones yields the indices of the set bits of w in ascending order.
// w is read lazily and must not change during iteration.
func Ones(w []uint64) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for el := len(w) - 1; el >= 0; el-- {
			base := uint(len(w)-1-el) * WordBits
			for v := w[el]; v != 0; v &= v - 1 {
				if !yield(base + uint(bits.TrailingZeros64(v))) {
					return
				}
			}
		}
	}
}

// Format renders w as zero-padded upper-case hex words, most significant
// first, separated by underscores.
func Format(w []uint64) string {
	var sb strings.Builder
	sb.Grow(len(w) * 17)
	for i, v := range w {
		if i > 0 {
			sb.WriteByte('_')
		}
		fmt.Fprintf(&sb, "%016X", v)
	}
	return sb.String()
}
