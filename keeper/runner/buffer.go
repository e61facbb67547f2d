package runner

import "bytes"

// cappedBuffer keeps at most limit bytes and silently drops the rest, so the child never blocks
// on a full pipe. Only the exec copy goroutine writes to it; it is read after Wait.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool
}

func newCappedBuffer(limit int) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.limit <= 0 {
		return b.buf.Write(p)
	}
	remaining := b.limit - b.buf.Len()
	if remaining >= len(p) {
		return b.buf.Write(p)
	}
	if remaining > 0 {
		b.buf.Write(p[:remaining])
	}
	b.truncated = true
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
