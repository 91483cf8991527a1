package bfio

import "bytes"

// BoundedBuffer keeps the first Limit bytes written to it and counts the
// rest, so diagnostics can echo program output without growing with it.
type BoundedBuffer struct {
	Limit int

	buf   bytes.Buffer
	total int
}

func (b *BoundedBuffer) Write(p []byte) (int, error) {
	b.total += len(p)
	if room := b.Limit - b.buf.Len(); room > 0 {
		b.buf.Write(p[:min(room, len(p))])
	}
	return len(p), nil
}

func (b *BoundedBuffer) Bytes() []byte {
	return b.buf.Bytes()
}

func (b *BoundedBuffer) Total() int {
	return b.total
}

func (b *BoundedBuffer) Truncated() bool {
	return b.total > b.buf.Len()
}
