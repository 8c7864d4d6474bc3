package lz4pack

import (
	"fmt"
	"io"
)

// streamBufSize is the initial buffer capacity used when materializing a
// stream before decoding it.
const streamBufSize = 64 << 10

// fillFromReader reads r to exhaustion into buf, doubling the buffer each
// time it fills up. It returns the (possibly replaced) buffer and the number
// of bytes actually filled; the buffer's capacity may exceed that. A clean
// end of stream (io.EOF or a zero-byte read) ends the fill, any other read
// failure is an error.
func fillFromReader(r io.Reader, buf []byte) ([]byte, int, error) {
	if len(buf) == 0 {
		buf = make([]byte, streamBufSize)
	}
	length := 0
	for {
		if length == len(buf) {
			next := make([]byte, len(buf)*2)
			copy(next, buf)
			buf = next
		}
		n, err := r.Read(buf[length:])
		length += n
		if err == io.EOF || (n == 0 && err == nil) {
			return buf, length, nil
		}
		if err != nil {
			return buf, length, fmt.Errorf("lz4pack: read stream: %w", err)
		}
	}
}
