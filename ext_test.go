package lz4pack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtHeader(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		tag       int8
		dataLen   int
		headerLen int
	}{
		{"FixExt1", []byte{mpFixExt1, 0x07, 0xAA}, 7, 1, 2},
		{"FixExt16", []byte{mpFixExt16, 0x63}, 99, 16, 2},
		{"Ext8", []byte{mpExt8, 0x05, 0x63}, 99, 5, 3},
		{"Ext16", []byte{mpExt16, 0x01, 0x00, 0x63}, 99, 256, 4},
		{"Ext32", []byte{mpExt32, 0x00, 0x01, 0x00, 0x00, 0x63}, 99, 65536, 6},
		{"NegativeTag", []byte{mpFixExt4, 0xFF}, -1, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, dataLen, headerLen, ok, err := parseExtHeader(tt.input)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, tt.dataLen, dataLen)
			assert.Equal(t, tt.headerLen, headerLen)
		})
	}

	t.Run("NotAnExtension", func(t *testing.T) {
		for _, b := range [][]byte{nil, {0x00}, {mpBin8, 3}, {0xA5, 'h', 'e', 'l', 'l', 'o'}} {
			_, _, _, ok, err := parseExtHeader(b)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})

	t.Run("TruncatedHeaders", func(t *testing.T) {
		for _, b := range [][]byte{{mpFixExt1}, {mpExt8, 5}, {mpExt16, 0, 1}, {mpExt32, 0, 0, 0, 4}} {
			_, _, _, _, err := parseExtHeader(b)
			assert.ErrorIs(t, err, ErrFormat)
		}
	})
}

func TestExt32HeaderRoundTrip(t *testing.T) {
	var b [ext32HeaderLen]byte
	putExt32Header(b[:], ExtTypeCompressed, 1234)

	tag, dataLen, headerLen, ok, err := parseExtHeader(b[:])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ExtTypeCompressed, tag)
	assert.Equal(t, 1234, dataLen)
	assert.Equal(t, ext32HeaderLen, headerLen)
}

func TestBinFraming(t *testing.T) {
	for _, n := range []int{0, 1, 255, 256, 70_000} {
		payload := compressible(n)
		framed := appendBin(nil, payload)

		got, consumed, err := readBin(framed)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, payload, got)
		assert.Equal(t, len(framed), consumed)
	}

	t.Run("WrongMarker", func(t *testing.T) {
		_, _, err := readBin([]byte{mpStr8, 1, 'x'})
		assert.ErrorIs(t, err, ErrBadValueHeader)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, _, err := readBin([]byte{mpBin8, 10, 1, 2})
		assert.ErrorIs(t, err, ErrTruncatedValue)
	})
}

func TestStrFraming(t *testing.T) {
	for _, v := range []string{"", "hi", strings.Repeat("s", 31), strings.Repeat("s", 32), strings.Repeat("s", 300)} {
		framed := appendStr(nil, v)

		got, consumed, err := readStr(framed)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(framed), consumed)
	}

	// Short strings must use the single-byte fixstr form.
	assert.EqualValues(t, mpFixStr|2, appendStr(nil, "hi")[0])

	t.Run("Truncated", func(t *testing.T) {
		_, _, err := readStr([]byte{mpFixStr | 5, 'a', 'b'})
		assert.ErrorIs(t, err, ErrTruncatedValue)
	})
}
