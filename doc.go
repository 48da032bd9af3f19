// Package fixedbitmaps provides fixed-width bitmaps backed by a single
// unsigned integer.
//
// A bitmap of width W holds W independent flags. Bit 0 is the least
// significant bit of the backing integer and the text rendering prints the
// most significant bit first.
//
// # Widths
//
//	Bitmap8     Fixed[uint8]
//	Bitmap16    Fixed[uint16]
//	Bitmap32    Fixed[uint32]
//	Bitmap64    Fixed[uint64]
//	BitmapArch  Fixed[uint]      // platform word
//	Bitmap128   struct over Uint128
//
// # Quick Start
//
//	var flags fixedbitmaps.Bitmap8
//	_ = flags.Set(3, true)
//	flags = flags.Or(fixedbitmaps.From[uint8](0b0001))
//	fmt.Println(flags)          // 00001001
//	fmt.Println(flags.Value())  // 9
//
// # Operations
//
// Bitwise operators are exposed as And, Or, Xor and Not; the ...Value variants
// take a raw integer of the same width. Add, Sub and Mul wrap modulo 2^W.
// Div returns ErrDivisionByZero for a zero divisor. Shl and Shr shifting by
// W or more bits yield the empty bitmap. Every index-taking operation
// returns an *IndexError (matching ErrIndexOutOfRange) for index >= W.
//
// Bitmaps are plain values. Concurrent mutation of a shared bitmap needs
// external synchronization.
//
// Larger fixed sizes (256 to 8192 bits) live in package oversized.
package fixedbitmaps
