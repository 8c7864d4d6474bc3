package lz4pack

import "fmt"

// MessagePack format markers used by this package. Only the extension family
// participates in the frame protocol; the bin and str families are emitted by
// the builtin formatters.
const (
	mpBin8  = 0xc4
	mpBin16 = 0xc5
	mpBin32 = 0xc6

	mpExt8  = 0xc7
	mpExt16 = 0xc8
	mpExt32 = 0xc9

	mpFixExt1  = 0xd4
	mpFixExt2  = 0xd5
	mpFixExt4  = 0xd6
	mpFixExt8  = 0xd7
	mpFixExt16 = 0xd8

	mpStr8  = 0xd9
	mpStr16 = 0xda
	mpStr32 = 0xdb

	mpFixStr     = 0xa0 // 0xa0..0xbf, low 5 bits carry the length
	mpFixStrMask = 0xe0
)

// ext32HeaderLen is the size of the header written by putExt32Header:
// one marker byte, a 4-byte big-endian data length, and the type tag.
const ext32HeaderLen = 6

// putExt32Header writes an ext32 header into b[:ext32HeaderLen], declaring n
// bytes of extension data of the given type. The encoder always emits the
// ext32 form: its size does not depend on n, so the length field can be
// backfilled after the data length is finally known.
func putExt32Header(b []byte, tag int8, n int) {
	b[0] = mpExt32
	Order.PutUint32(b[1:5], uint32(n))
	b[5] = byte(tag)
}

// parseExtHeader classifies the leading bytes of b. If b does not start with
// an extension marker it returns ok=false and the caller treats b as an
// ordinary serialized value. If it does, the header is parsed in any of its
// encodings (fixext1..fixext16, ext8, ext16, ext32) and the type tag, the
// declared data length and the header size are returned. A marker with a
// truncated header is a format error.
func parseExtHeader(b []byte) (tag int8, dataLen, headerLen int, ok bool, err error) {
	if len(b) == 0 {
		return 0, 0, 0, false, nil
	}
	switch b[0] {
	case mpFixExt1, mpFixExt2, mpFixExt4, mpFixExt8, mpFixExt16:
		if len(b) < 2 {
			return 0, 0, 0, false, fmt.Errorf("%w: truncated fixext header", ErrFormat)
		}
		return int8(b[1]), 1 << (b[0] - mpFixExt1), 2, true, nil
	case mpExt8:
		if len(b) < 3 {
			return 0, 0, 0, false, fmt.Errorf("%w: truncated ext8 header", ErrFormat)
		}
		return int8(b[2]), int(b[1]), 3, true, nil
	case mpExt16:
		if len(b) < 4 {
			return 0, 0, 0, false, fmt.Errorf("%w: truncated ext16 header", ErrFormat)
		}
		return int8(b[3]), int(Order.Uint16(b[1:3])), 4, true, nil
	case mpExt32:
		if len(b) < ext32HeaderLen {
			return 0, 0, 0, false, fmt.Errorf("%w: truncated ext32 header", ErrFormat)
		}
		return int8(b[5]), int(int64(Order.Uint32(b[1:5]))), ext32HeaderLen, true, nil
	}
	return 0, 0, 0, false, nil
}

// appendBin appends p to dst framed as a bin8/bin16/bin32 value, choosing the
// smallest header that fits.
func appendBin(dst, p []byte) []byte {
	n := len(p)
	switch {
	case n < 1<<8:
		dst = append(dst, mpBin8, byte(n))
	case n < 1<<16:
		dst = append(dst, mpBin16, byte(n>>8), byte(n))
	default:
		dst = append(dst, mpBin32, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
	return append(dst, p...)
}

// readBin parses a bin-framed value at the start of b and returns the payload
// as a sub-slice of b together with the total bytes consumed.
func readBin(b []byte) (payload []byte, consumed int, err error) {
	if len(b) == 0 {
		return nil, 0, fmt.Errorf("%w: empty input", ErrTruncatedValue)
	}
	var n, headerLen int
	switch b[0] {
	case mpBin8:
		if len(b) < 2 {
			return nil, 0, fmt.Errorf("%w: truncated bin8 header", ErrTruncatedValue)
		}
		n, headerLen = int(b[1]), 2
	case mpBin16:
		if len(b) < 3 {
			return nil, 0, fmt.Errorf("%w: truncated bin16 header", ErrTruncatedValue)
		}
		n, headerLen = int(Order.Uint16(b[1:3])), 3
	case mpBin32:
		if len(b) < 5 {
			return nil, 0, fmt.Errorf("%w: truncated bin32 header", ErrTruncatedValue)
		}
		n, headerLen = int(int64(Order.Uint32(b[1:5]))), 5
	default:
		return nil, 0, fmt.Errorf("%w: 0x%02x is not a bin marker", ErrBadValueHeader, b[0])
	}
	if len(b) < headerLen+n {
		return nil, 0, fmt.Errorf("%w: bin declares %d bytes, %d available", ErrTruncatedValue, n, len(b)-headerLen)
	}
	return b[headerLen : headerLen+n], headerLen + n, nil
}

// appendStr appends s to dst framed as a fixstr/str8/str16/str32 value.
func appendStr(dst []byte, s string) []byte {
	n := len(s)
	switch {
	case n < 32:
		dst = append(dst, mpFixStr|byte(n))
	case n < 1<<8:
		dst = append(dst, mpStr8, byte(n))
	case n < 1<<16:
		dst = append(dst, mpStr16, byte(n>>8), byte(n))
	default:
		dst = append(dst, mpStr32, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
	return append(dst, s...)
}

// readStr parses a str-framed value at the start of b.
func readStr(b []byte) (s string, consumed int, err error) {
	if len(b) == 0 {
		return "", 0, fmt.Errorf("%w: empty input", ErrTruncatedValue)
	}
	var n, headerLen int
	switch {
	case b[0]&mpFixStrMask == mpFixStr:
		n, headerLen = int(b[0]&^mpFixStrMask), 1
	case b[0] == mpStr8:
		if len(b) < 2 {
			return "", 0, fmt.Errorf("%w: truncated str8 header", ErrTruncatedValue)
		}
		n, headerLen = int(b[1]), 2
	case b[0] == mpStr16:
		if len(b) < 3 {
			return "", 0, fmt.Errorf("%w: truncated str16 header", ErrTruncatedValue)
		}
		n, headerLen = int(Order.Uint16(b[1:3])), 3
	case b[0] == mpStr32:
		if len(b) < 5 {
			return "", 0, fmt.Errorf("%w: truncated str32 header", ErrTruncatedValue)
		}
		n, headerLen = int(int64(Order.Uint32(b[1:5]))), 5
	default:
		return "", 0, fmt.Errorf("%w: 0x%02x is not a str marker", ErrBadValueHeader, b[0])
	}
	if len(b) < headerLen+n {
		return "", 0, fmt.Errorf("%w: str declares %d bytes, %d available", ErrTruncatedValue, n, len(b)-headerLen)
	}
	return string(b[headerLen : headerLen+n]), headerLen + n, nil
}
