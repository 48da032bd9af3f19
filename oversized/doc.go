// Package oversized provides fixed bitmaps wider than any native integer:
// 256, 512, 1024, 2048, 4096 and 8192 (BitmapKB) bits.
//
// Each type is an array of uint64 words with element 0 holding the most
// significant bits, so a word array converts directly:
//
//	b := oversized.Bitmap256([4]uint64{0, 0, 0, 0b1001})
//	ok, _ := b.Get(3) // true
//
// The types support bit access, AND/OR/XOR/NOT against each other or a raw
// word array, and AddWord with carry propagation. Index errors are the
// fixedbitmaps ones. Compare and Less order bitmaps by the number they hold.
// String renders upper-case hex words joined by underscores, each padded to
// 16 digits so every rendering of a type has the same length.
//
// The types are generated from one template; edit internal/cmd/genwide and
// regenerate rather than touching bitmaps_gen.go.
package oversized

//go:generate go run ../internal/cmd/genwide -o bitmaps_gen.go
