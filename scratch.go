package lz4pack

// scratchMinSize is the initial capacity of a scratch buffer, and the
// quantum persistent growth is rounded up to.
const scratchMinSize = 64 << 10

// scratch is a reusable byte region owned by exactly one Codec. It is created
// lazily, grown by wholesale replacement with a single contiguous region, and
// never shrunk. There is no locking: exclusivity comes entirely from the
// one-goroutine-per-Codec ownership rule. It is not reentrant either: a
// nested call on the same Codec overwrites whatever region an outer call
// still holds a slice into.
type scratch struct {
	buf []byte
}

// get returns the current region at full capacity, allocating the initial
// one on first use.
func (s *scratch) get() []byte {
	if s.buf == nil {
		s.buf = make([]byte, scratchMinSize)
	}
	return s.buf
}

// grow returns a region of at least n bytes, replacing the current one when
// its capacity is insufficient. The replacement becomes the persistent
// buffer; capacity is monotonically non-decreasing across calls.
func (s *scratch) grow(n int) []byte {
	if cap(s.buf) < n {
		s.buf = make([]byte, Roundup(n, scratchMinSize))
	}
	return s.get()
}
