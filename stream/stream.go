// Package stream reads and writes whole tnetstring frames over io
// endpoints. The reader never consumes a byte past the frame it returns, so
// a file or socket can carry a tnetstring followed by unrelated data and
// hand the rest to another consumer untouched.
package stream

import (
	"io"

	"github.com/unkn0wn-root/tnetstr"
)

// Reader decodes one value per Read call from r.
//
// The length prefix is read one byte at a time; buffering the source here
// would steal bytes that belong to whatever follows the frame. Wrap r in a
// bufio.Reader only when over-reading is acceptable.
type Reader[V any] struct {
	c *tnetstr.Coder[V]
	r io.Reader
}

func NewReader[V any](c *tnetstr.Coder[V], r io.Reader) *Reader[V] {
	return &Reader[V]{c: c, r: r}
}

// Read parses the next frame. A source exhausted before the first prefix
// byte returns io.EOF untouched; a frame cut short anywhere else surfaces as
// io.ErrUnexpectedEOF.
func (rd *Reader[V]) Read() (V, error) {
	var zero V
	length, err := rd.readLength()
	if err != nil {
		return zero, err
	}
	buf := make([]byte, length+1) // payload plus the tag byte
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return zero, err
	}
	return rd.c.DecodePayload(tnetstr.Tag(buf[length]), buf[:length])
}

// readLength consumes the decimal prefix up to and including the ':'
// separator, enforcing the same no-padding and MaxLength rules as buffer
// decoding.
func (rd *Reader[V]) readLength() (int, error) {
	var b [1]byte
	n := 0
	ndigits := 0
	for {
		if _, err := io.ReadFull(rd.r, b[:]); err != nil {
			if err == io.EOF && ndigits > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		c := b[0]
		if c == ':' {
			if ndigits == 0 {
				return 0, &tnetstr.SyntaxError{Msg: "missing length prefix"}
			}
			return n, nil
		}
		if c < '0' || c > '9' {
			return 0, &tnetstr.SyntaxError{Offset: ndigits, Msg: "missing length prefix"}
		}
		if ndigits > 0 && n == 0 {
			return 0, &tnetstr.SyntaxError{Offset: ndigits, Msg: "padded length prefix"}
		}
		n = n*10 + int(c-'0')
		if n > rd.c.MaxLength() {
			return 0, &tnetstr.SyntaxError{Offset: ndigits, Msg: "absurdly large length prefix"}
		}
		ndigits++
	}
}

// Writer encodes one whole frame per Write call onto w.
type Writer[V any] struct {
	c *tnetstr.Coder[V]
	w io.Writer
}

func NewWriter[V any](c *tnetstr.Coder[V], w io.Writer) *Writer[V] {
	return &Writer[V]{c: c, w: w}
}

func (wr *Writer[V]) Write(v V) error {
	b, err := wr.c.Encode(v)
	if err != nil {
		return err
	}
	_, err = wr.w.Write(b)
	return err
}
