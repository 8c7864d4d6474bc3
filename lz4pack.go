// Package lz4pack is an optional LZ4 compression envelope for a
// MessagePack-style binary serialization format.
//
// Serialized payloads at or above MinCompressSize are wrapped in a
// self-describing extension frame: an ext32 header carrying the reserved
// ExtTypeCompressed tag, the exact uncompressed byte length, and the LZ4
// block. Smaller payloads pass through untouched, and the decoder tells the
// two forms apart from the leading bytes alone, so a stream of mixed frames
// needs no out-of-band signal.
//
// The typed entry points (Marshal, Unmarshal, Write, Read) resolve a
// Formatter for the value's type through a Resolver, either the process-wide
// default or an explicit one, and compose it with a pooled frame Codec.
// Codecs reuse a scratch buffer across calls; use one directly when the extra
// copy the entry points make is too expensive, keeping it confined to a
// single goroutine.
package lz4pack

import (
	"bytes"
	"fmt"
	"io"
)

// Marshal serializes v with the default resolver and frames the result.
// The returned slice is owned by the caller.
func Marshal[T any](v T) ([]byte, error) {
	return MarshalWith(v, DefaultResolver())
}

// MarshalWith is Marshal with an explicit resolver.
func MarshalWith[T any](v T, r Resolver) ([]byte, error) {
	f, err := GetFormatter[T](r)
	if err != nil {
		return nil, err
	}
	raw, err := f.Serialize(v, r)
	if err != nil {
		return nil, err
	}
	c := getCodec()
	defer putCodec(c)
	frame, err := c.Encode(raw)
	if err != nil {
		return nil, err
	}
	// The frame may alias the pooled codec's scratch buffer.
	return bytes.Clone(frame), nil
}

// Write serializes v with the default resolver and writes the frame to w.
func Write[T any](w io.Writer, v T) error {
	return WriteWith(w, v, DefaultResolver())
}

// WriteWith is Write with an explicit resolver.
func WriteWith[T any](w io.Writer, v T, r Resolver) error {
	f, err := GetFormatter[T](r)
	if err != nil {
		return err
	}
	raw, err := f.Serialize(v, r)
	if err != nil {
		return err
	}
	c := getCodec()
	defer putCodec(c)
	frame, err := c.Encode(raw)
	if err != nil {
		return err
	}
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("lz4pack: write stream: %w", err)
	}
	return nil
}

// Unmarshal unwraps a frame and deserializes the payload into a T using the
// default resolver.
func Unmarshal[T any](b []byte) (T, error) {
	return UnmarshalWith[T](b, DefaultResolver())
}

// UnmarshalWith is Unmarshal with an explicit resolver.
func UnmarshalWith[T any](b []byte, r Resolver) (T, error) {
	var zero T
	f, err := GetFormatter[T](r)
	if err != nil {
		return zero, err
	}
	c := getCodec()
	defer putCodec(c)
	raw, err := c.Decode(b)
	if err != nil {
		return zero, err
	}
	v, _, err := f.Deserialize(raw, r)
	if err != nil {
		return zero, err
	}
	return v, nil
}

// Read materializes src fully in memory, then unwraps and deserializes it
// into a T using the default resolver.
func Read[T any](src io.Reader) (T, error) {
	return ReadWith[T](src, DefaultResolver())
}

// ReadWith is Read with an explicit resolver.
func ReadWith[T any](src io.Reader, r Resolver) (T, error) {
	buf, n, err := fillFromReader(src, make([]byte, streamBufSize))
	if err != nil {
		var zero T
		return zero, err
	}
	return UnmarshalWith[T](buf[:n], r)
}
