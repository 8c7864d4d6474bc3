package lz4pack

import "sync"

// codecPool backs the package-level entry points. sync.Pool is the Go
// rendition of a thread-local slot: Get hands out a Codec no other goroutine
// holds, so the single-goroutine ownership rule is upheld without locking.
// Entry points must copy (or fully consume) anything aliasing the codec's
// scratch buffer before Put.
var codecPool = sync.Pool{
	New: func() any { return NewCodec() },
}

func getCodec() *Codec  { return codecPool.Get().(*Codec) }
func putCodec(c *Codec) { codecPool.Put(c) }
