package lz4pack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// Formatter converts values of one type to and from their serialized bytes.
// The resolver is passed through so composite formatters can resolve the
// formatters of their element types.
//
// Deserialize receives the raw payload starting at the value to decode and
// returns the value plus the bytes consumed. The payload may alias a codec's
// scratch buffer, so implementations must not retain it: anything the
// returned value keeps (slices, strings built by casting) has to be copied.
type Formatter[T any] interface {
	Serialize(v T, r Resolver) ([]byte, error)
	Deserialize(b []byte, r Resolver) (T, int, error)
}

// BytesFormatter serializes []byte values with bin framing.
type BytesFormatter struct{}

var _ Formatter[[]byte] = BytesFormatter{}

func (BytesFormatter) Serialize(v []byte, _ Resolver) ([]byte, error) {
	return appendBin(nil, v), nil
}

func (BytesFormatter) Deserialize(b []byte, _ Resolver) ([]byte, int, error) {
	payload, n, err := readBin(b)
	if err != nil {
		return nil, 0, err
	}
	// The payload sub-slice aliases b; hand back an owned copy.
	return bytes.Clone(payload), n, nil
}

// StringFormatter serializes strings with fixstr/str framing.
type StringFormatter struct{}

var _ Formatter[string] = StringFormatter{}

func (StringFormatter) Serialize(v string, _ Resolver) ([]byte, error) {
	return appendStr(nil, v), nil
}

func (StringFormatter) Deserialize(b []byte, _ Resolver) (string, int, error) {
	return readStr(b) // string(...) already copies out of b
}

// binarySizeCache avoids the reflection cost of binary.Size on every call.
var binarySizeCache = xsync.NewMap[reflect.Type, int]()

// Binary is a Formatter for structs composed entirely of fixed-size fields,
// encoded with encoding/binary in the package byte order and no framing: its
// size is a function of the type alone, so Deserialize knows exactly how many
// bytes to consume.
//
// Types with slices, maps or strings are rejected at Serialize/Deserialize
// time, since binary.Size cannot measure them.
type Binary[T any] struct{}

var _ Formatter[struct{}] = Binary[struct{}]{}

func (Binary[T]) size(v *T) (int, error) {
	t := reflect.TypeOf(v).Elem()
	if n, ok := binarySizeCache.Load(t); ok {
		return n, nil
	}
	n := binary.Size(v)
	if n < 0 {
		return 0, fmt.Errorf("lz4pack: %s has variable-size fields, not usable with Binary", t)
	}
	binarySizeCache.Store(t, n)
	return n, nil
}

func (f Binary[T]) Serialize(v T, _ Resolver) ([]byte, error) {
	size, err := f.size(&v)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := binary.Encode(buf, Order, &v); err != nil {
		return nil, err
	}
	return buf, nil
}

func (f Binary[T]) Deserialize(b []byte, _ Resolver) (T, int, error) {
	var v T
	size, err := f.size(&v)
	if err != nil {
		return v, 0, err
	}
	if len(b) < size {
		return v, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedValue, size, len(b))
	}
	n, err := binary.Decode(b[:size], Order, &v)
	if err != nil {
		return v, n, err
	}
	return v, n, nil
}
