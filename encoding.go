package fixedbitmaps

import (
	"github.com/tinylib/msgp/msgp"
	"lukechampine.com/uint128"
)

// Text form is the String rendering; the binary form is the backing
// integer in big-endian order, Width/8 bytes long; msgpack carries the
// backing integer as uint (Fixed) or as a 16-byte bin (Bitmap128).

// MarshalText implements encoding.TextMarshaler.
func (b Fixed[T]) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Fixed[T]) UnmarshalText(text []byte) error {
	w := b.Width()
	if uint(len(text)) != w {
		return encodingError("text length %d, want %d", len(text), w)
	}
	var v T
	for _, c := range text {
		v <<= 1
		switch c {
		case '1':
			v |= 1
		case '0':
		default:
			return encodingError("unexpected character %q", c)
		}
	}
	b.v = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Fixed[T]) MarshalBinary() ([]byte, error) {
	n := int(b.Width() / 8)
	out := make([]byte, n)
	v := uint64(b.v)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Fixed[T]) UnmarshalBinary(data []byte) error {
	if n := int(b.Width() / 8); len(data) != n {
		return encodingError("binary length %d, want %d", len(data), n)
	}
	var v T
	for _, c := range data {
		v = v<<8 | T(c)
	}
	b.v = v
	return nil
}

// MarshalMsg implements msgp.Marshaler.
func (b Fixed[T]) MarshalMsg(o []byte) ([]byte, error) {
	return msgp.AppendUint64(o, uint64(b.v)), nil
}

// UnmarshalMsg implements msgp.Unmarshaler.
func (b *Fixed[T]) UnmarshalMsg(bts []byte) ([]byte, error) {
	v, o, err := msgp.ReadUint64Bytes(bts)
	if err != nil {
		return bts, err
	}
	if uint64(T(v)) != v {
		return bts, encodingError("value %d overflows %d bits", v, b.Width())
	}
	b.v = T(v)
	return o, nil
}

// Msgsize implements msgp.Sizer.
func (b Fixed[T]) Msgsize() int {
	return msgp.Uint64Size
}

func (b Bitmap128) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bitmap128) UnmarshalText(text []byte) error {
	if len(text) != Width128 {
		return encodingError("text length %d, want %d", len(text), Width128)
	}
	var v Uint128
	for _, c := range text {
		v = v.Lsh(1)
		switch c {
		case '1':
			v.Lo |= 1
		case '0':
		default:
			return encodingError("unexpected character %q", c)
		}
	}
	b.v = v
	return nil
}

func (b Bitmap128) MarshalBinary() ([]byte, error) {
	out := make([]byte, Width128/8)
	b.v.PutBytesBE(out)
	return out, nil
}

func (b *Bitmap128) UnmarshalBinary(data []byte) error {
	if len(data) != Width128/8 {
		return encodingError("binary length %d, want %d", len(data), Width128/8)
	}
	b.v = uint128.FromBytesBE(data)
	return nil
}

func (b Bitmap128) MarshalMsg(o []byte) ([]byte, error) {
	raw, _ := b.MarshalBinary()
	return msgp.AppendBytes(o, raw), nil
}

func (b *Bitmap128) UnmarshalMsg(bts []byte) ([]byte, error) {
	raw, o, err := msgp.ReadBytesBytes(bts, nil)
	if err != nil {
		return bts, err
	}
	if err := b.UnmarshalBinary(raw); err != nil {
		return bts, err
	}
	return o, nil
}

func (b Bitmap128) Msgsize() int {
	return msgp.BytesPrefixSize + Width128/8
}
