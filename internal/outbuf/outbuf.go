// Package outbuf provides the back-to-front render buffer behind the
// encoder. Frames are written tag first and length prefix last, so by the
// time the prefix digits go in, the payload length is known and no byte ever
// has to shift. The finished frame comes out front-to-back with one copy.
package outbuf

const initialSize = 64

// Buffer writes toward the front of its allocation. head is the index of the
// last byte written and decreases as writes land; the used region is
// buf[head:].
type Buffer struct {
	buf  []byte
	head int
}

func New() *Buffer {
	return &Buffer{buf: make([]byte, initialSize), head: initialSize}
}

// Len reports the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) - b.head }

// extend grows the allocation, doubling until free more bytes fit in front
// of the used region, then moves the used bytes to the new tail.
func (b *Buffer) extend(free int) {
	used := b.Len()
	size := 2 * len(b.buf)
	for size < free+used {
		size *= 2
	}
	grown := make([]byte, size)
	head := size - used
	copy(grown[head:], b.buf[b.head:])
	b.buf = grown
	b.head = head
}

// PutByte prepends one byte.
func (b *Buffer) PutByte(c byte) {
	if b.head == 0 {
		b.extend(1)
	}
	b.head--
	b.buf[b.head] = c
}

// Put prepends p.
func (b *Buffer) Put(p []byte) {
	if b.head < len(p) {
		b.extend(len(p))
	}
	b.head -= len(p)
	copy(b.buf[b.head:], p)
}

// PutUint prepends the decimal digits of n. Digits are emitted least
// significant first, which is exactly the right order for a buffer that
// writes backwards.
func (b *Buffer) PutUint(n uint64) {
	for {
		b.PutByte(byte(n%10) + '0')
		n /= 10
		if n == 0 {
			return
		}
	}
}

// Bytes returns the written bytes in front-to-back order. The buffer must
// not be written to afterwards.
func (b *Buffer) Bytes() []byte {
	return b.buf[b.head:]
}
