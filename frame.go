package lz4pack

import "fmt"

const (
	// ExtTypeCompressed is the reserved extension type tag marking a frame as
	// a compressed blob. Application-level extensions must not use it.
	ExtTypeCompressed int8 = 99

	// MinCompressSize is the threshold below which payloads are passed
	// through uncompressed: the extension header, the length field and the
	// block framing cost more than they save on inputs this small. This is
	// encoder policy only; the decoder accepts both frame forms at any size.
	MinCompressSize = 50
)

// uncompressedLenSize is the width of the declared-uncompressed-length field
// that sits between the extension header and the compressed block.
const uncompressedLenSize = 4

// frameReserve is the worst-case space taken by the frame prefix: the ext32
// header plus the uncompressed-length field.
const frameReserve = ext32HeaderLen + uncompressedLenSize

// Codec frames already-serialized payloads, compressing them above the size
// threshold and recognizing both frame forms on the way back.
//
// A Codec owns a scratch buffer and the compressor's match state, so it must
// be confined to a single goroutine. Slices returned by Encode and Decode may
// alias the scratch buffer: they stay valid only until the next Encode or
// Decode call on the same Codec, and a nested call from within that window
// corrupts the outer call's result.
type Codec struct {
	comp Compressor
	sc   scratch
}

// NewCodec creates a Codec backed by the LZ4 block compressor.
func NewCodec() *Codec {
	return &Codec{comp: new(lz4Compressor)}
}

// NewCodecWith creates a Codec backed by a custom Compressor.
func NewCodecWith(comp Compressor) (*Codec, error) {
	if comp == nil {
		return nil, ErrNilCompressor
	}
	return &Codec{comp: comp}, nil
}

// Encode wraps raw serializer output into its wire frame.
//
// Payloads under MinCompressSize are returned unchanged. Larger payloads are
// compressed into the scratch buffer behind an ext32 header carrying
// ExtTypeCompressed and the declared uncompressed length:
//
//	[0xc9][extLen:4][tag:1][uncompressedLen:4][lz4 block]
//
// where extLen == 4 + len(lz4 block). The header length field is backfilled
// once compression has run, which is why the ext32 form is always used: its
// size does not depend on the value it declares.
//
// Encode never compares compressed and raw sizes, so a compressed frame can
// exceed the raw payload for high-entropy input. The one exception is the
// compressor itself declining (written length zero), in which case the raw
// form is shipped.
func (c *Codec) Encode(raw []byte) ([]byte, error) {
	if len(raw) < MinCompressSize {
		return raw, nil
	}
	need := c.comp.Bound(len(raw)) + frameReserve
	dst := c.sc.get()
	if len(dst) < need {
		// One-off region of exactly the required size, deliberately not
		// retained as the persistent scratch buffer.
		dst = make([]byte, need)
	}
	n, err := c.comp.Compress(dst[frameReserve:], raw)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return raw, nil
	}
	putExt32Header(dst, ExtTypeCompressed, uncompressedLenSize+n)
	Order.PutUint32(dst[ext32HeaderLen:frameReserve], uint32(len(raw)))
	return dst[:frameReserve+n], nil
}

// Decode unwraps a frame back to raw serializer output.
//
// Input whose leading bytes parse as an extension header carrying
// ExtTypeCompressed is decompressed into the scratch buffer, growing it to
// the declared length first. Any other input, including extensions with
// other type tags, is already raw serializer output and is returned
// unchanged. A frame that declares more payload than the input holds, or
// whose block decompresses to a different length than declared, is an error;
// no truncated or padded result is ever returned.
func (c *Codec) Decode(frame []byte) ([]byte, error) {
	tag, dataLen, headerLen, ok, err := parseExtHeader(frame)
	if err != nil {
		return nil, err
	}
	if !ok || tag != ExtTypeCompressed {
		return frame, nil
	}
	if dataLen < uncompressedLenSize || dataLen > len(frame)-headerLen {
		return nil, fmt.Errorf("%w: extension declares %d bytes, %d available",
			ErrFormat, dataLen, len(frame)-headerLen)
	}
	targetLen := int(int64(Order.Uint32(frame[headerLen : headerLen+uncompressedLenSize])))
	dst := c.sc.grow(targetLen)[:targetLen]
	if _, err := c.comp.Decompress(dst, frame[headerLen+uncompressedLenSize:headerLen+dataLen]); err != nil {
		return nil, err
	}
	return dst, nil
}
