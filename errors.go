package lz4pack

import "errors"

var (
	// ErrFormat indicates that the leading bytes of a frame carry the reserved
	// compression extension marker but cannot be parsed as a complete frame:
	// a truncated extension header, a declared payload running past the end of
	// the input, or a payload too short to hold the uncompressed-length field.
	ErrFormat = errors.New("lz4pack: malformed compression frame")

	// ErrLengthMismatch indicates that decompression produced a byte count
	// different from the frame's declared uncompressed length.
	ErrLengthMismatch = errors.New("lz4pack: decompressed length does not match declared length")

	// ErrNoFormatter indicates that the resolver has no formatter registered
	// for the requested type, or the registered value does not implement
	// Formatter for that type.
	ErrNoFormatter = errors.New("lz4pack: no formatter registered for type")

	// ErrNilResolver indicates that a serialization entry point was called
	// with a nil Resolver.
	ErrNilResolver = errors.New("lz4pack: nil resolver")

	// ErrNilCompressor indicates that NewCodecWith was called with a nil
	// Compressor.
	ErrNilCompressor = errors.New("lz4pack: NewCodecWith called with a nil Compressor")

	// ErrTruncatedValue is returned by the builtin formatters when the raw
	// payload ends before the value it declares.
	ErrTruncatedValue = errors.New("lz4pack: truncated serialized value")

	// ErrBadValueHeader is returned by the builtin formatters when the
	// payload does not begin with the format marker they expect.
	ErrBadValueHeader = errors.New("lz4pack: unexpected serialized value header")
)
