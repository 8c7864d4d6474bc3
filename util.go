package lz4pack

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every multi-byte field in this package: the
// frame's length fields and the builtin formatters' output. MessagePack-style
// formats are big-endian on the wire.
var Order = binary.BigEndian

// Roundup rounds n up to the nearest multiple of align. align must be a power of two.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }
