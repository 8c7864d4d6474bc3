package lz4pack

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneByteReader yields its content one byte per Read call, the slowest
// well-behaved stream a transport can hand us.
type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func TestFillFromReader(t *testing.T) {
	const initial = 8

	// Lengths below, at, and above the initial capacity; the last two force
	// at least one doubling.
	for _, n := range []int{0, 5, initial, initial + 1, 5 * initial} {
		content := compressible(n)

		buf, length, err := fillFromReader(bytes.NewReader(content), make([]byte, initial))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, length)
		assert.Equal(t, content, buf[:length])
		assert.GreaterOrEqual(t, len(buf), length)
	}
}

func TestFillFromReaderSlowStream(t *testing.T) {
	content := compressible(50)
	buf, length, err := fillFromReader(&oneByteReader{data: content}, make([]byte, 8))
	require.NoError(t, err)
	assert.Equal(t, content, buf[:length])
}

func TestFillFromReaderError(t *testing.T) {
	boom := errors.New("connection reset")
	r := io.MultiReader(bytes.NewReader(compressible(3)), &failingReader{err: boom})

	_, _, err := fillFromReader(r, make([]byte, 8))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }
