package codec

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// MsgPack is a MessagePack codec for values implementing the msgp
// interfaces, such as the fixedbitmaps types.
type MsgPack struct{}

// Marshal encodes v, which must implement msgp.Marshaler.
func (MsgPack) Marshal(v any) ([]byte, error) {
	m, ok := v.(msgp.Marshaler)
	if !ok {
		return nil, fmt.Errorf("codec msgpack: %T does not implement msgp.Marshaler", v)
	}
	var dst []byte
	if s, ok := v.(msgp.Sizer); ok {
		dst = make([]byte, 0, s.Msgsize())
	}
	return m.MarshalMsg(dst)
}

// Unmarshal decodes data into v, which must implement msgp.Unmarshaler.
// Trailing bytes are rejected.
func (MsgPack) Unmarshal(data []byte, v any) error {
	u, ok := v.(msgp.Unmarshaler)
	if !ok {
		return fmt.Errorf("codec msgpack: %T does not implement msgp.Unmarshaler", v)
	}
	rest, err := u.UnmarshalMsg(data)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("codec msgpack: %d trailing bytes", len(rest))
	}
	return nil
}

// Name returns the unique name of the codec ("msgpack").
func (MsgPack) Name() string { return "msgpack" }
