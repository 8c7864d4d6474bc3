package lz4pack

import (
	"bytes"
	"testing"
)

func BenchmarkEncode(b *testing.B) {
	codec := NewCodec()
	payload := compressible(64 << 10)
	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Encode(payload)
	}
}

func BenchmarkDecode(b *testing.B) {
	codec := NewCodec()
	frame, _ := codec.Encode(compressible(64 << 10))
	frame = bytes.Clone(frame) // detach from the scratch Decode writes into
	b.SetBytes(64 << 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Decode(frame)
	}
}

func BenchmarkEncodeBelowThreshold(b *testing.B) {
	codec := NewCodec()
	payload := compressible(MinCompressSize - 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = codec.Encode(payload)
	}
}

// Baseline for the allocation cost the pooled facade adds over a held Codec.
func BenchmarkMarshalBytes(b *testing.B) {
	payload := compressible(64 << 10)
	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Marshal(payload)
	}
}
