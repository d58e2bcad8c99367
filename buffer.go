package tinyfmt

import "sync"

// buffer collects one rendered fragment before it reaches a sink.
type buffer []byte

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 128)
		return (*buffer)(&b)
	},
}

func newBuffer() *buffer {
	return bufPool.Get().(*buffer)
}

// free returns b to the pool. Oversized buffers are dropped so that pooled
// entries keep roughly the same memory cost.
func (b *buffer) free() {
	if cap(*b) > 64<<10 {
		return
	}
	*b = (*b)[:0]
	bufPool.Put(b)
}

func (b *buffer) Write(p []byte) (int, error) {
	*b = append(*b, p...)
	return len(p), nil
}

func (b *buffer) WriteString(s string) (int, error) {
	*b = append(*b, s...)
	return len(s), nil
}

func (b *buffer) WriteByte(c byte) error {
	*b = append(*b, c)
	return nil
}

func (b *buffer) fill(c byte, n int) {
	for ; n > 0; n-- {
		*b = append(*b, c)
	}
}
