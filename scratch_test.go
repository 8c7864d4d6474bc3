package lz4pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScratchLazyCreation(t *testing.T) {
	var s scratch
	assert.Nil(t, s.buf)

	b := s.get()
	assert.Len(t, b, scratchMinSize)
	assert.Equal(t, &b[0], &s.get()[0], "get must keep returning the same region")
}

func TestScratchGrow(t *testing.T) {
	var s scratch

	small := s.grow(100)
	assert.Len(t, small, scratchMinSize, "small requests are served by the initial region")

	big := s.grow(scratchMinSize + 1)
	assert.Equal(t, 2*scratchMinSize, len(big), "growth is rounded up to the size quantum")

	// Growing to a smaller requirement must not shrink the region.
	again := s.grow(10)
	assert.Equal(t, &big[0], &again[0])
}
