// Package conv provides checked integer conversions for bit indices.
//
// Bit indices are uint throughout the module, while neighbouring APIs use
// int (flags) and uint32 (roaring). These helpers
// reject values that would be truncated by a plain conversion.
package conv
