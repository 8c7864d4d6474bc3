package lz4pack

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Compressor is the block-compression capability consumed by the frame codec.
// Implementations are stateful and follow the same ownership rule as the
// Codec that holds them: one per goroutine, no concurrent use.
type Compressor interface {
	// Bound returns the worst-case compressed size for n input bytes.
	Bound(n int) int

	// Compress compresses src into dst, which is at least Bound(len(src))
	// bytes, and returns the written length. A written length of zero means
	// the compressor declined: src is incompressible and the caller must
	// store it raw.
	Compress(dst, src []byte) (int, error)

	// Decompress decompresses src into dst. len(dst) is the exact expected
	// output size; producing any other count is an error.
	Decompress(dst, src []byte) (int, error)
}

// lz4Compressor implements Compressor over the LZ4 block format. The embedded
// lz4.Compressor carries the match hash table, reused across calls.
type lz4Compressor struct {
	c lz4.Compressor
}

var _ Compressor = (*lz4Compressor)(nil)

func (z *lz4Compressor) Bound(n int) int {
	return lz4.CompressBlockBound(n)
}

func (z *lz4Compressor) Compress(dst, src []byte) (int, error) {
	n, err := z.c.CompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("lz4pack: compress block: %w", err)
	}
	return n, nil
}

func (z *lz4Compressor) Decompress(dst, src []byte) (int, error) {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}
	if n != len(dst) {
		return n, fmt.Errorf("%w: got %d bytes, declared %d", ErrLengthMismatch, n, len(dst))
	}
	return n, nil
}
