package codec

import (
	"testing"

	"github.com/hupe1980/fixedbitmaps"
)

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func BenchmarkCodec_Marshal_Bitmap64(b *testing.B) {
	v := fixedbitmaps.From[uint64](0xF0F0F0F0F0F0F0F0)

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, v) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, v) })
	b.Run("msgpack", func(b *testing.B) { benchmarkCodecMarshal(b, MsgPack{}, v) })
}
