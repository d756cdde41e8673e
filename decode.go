package tnetstr

import (
	"bytes"
	"fmt"
)

// decoder walks one input buffer with a cursor. Every nested frame is bounded
// by its parent's payload span, so a child length prefix can never claim
// bytes past what the parent declared, even when the surrounding buffer is
// larger.
type decoder[V any] struct {
	c    *Coder[V]
	data []byte
	off  int
}

// Decode parses exactly one frame spanning all of data. Trailing bytes are a
// SyntaxError; use Pop to read one frame off the front of a longer buffer.
func (c *Coder[V]) Decode(data []byte) (V, error) {
	v, rest, err := c.Pop(data)
	if err != nil {
		return v, err
	}
	if len(rest) != 0 {
		var zero V
		return zero, &SyntaxError{Offset: len(data) - len(rest), Msg: "trailing data after value"}
	}
	return v, nil
}

// Pop parses one frame off the front of data and returns the parsed value
// together with the unconsumed remainder. On error no value and no remainder
// are returned; nothing partially parsed survives the call.
func (c *Coder[V]) Pop(data []byte) (V, []byte, error) {
	d := decoder[V]{c: c, data: data}
	v, err := d.value(len(data), 0)
	if err != nil {
		var zero V
		return zero, nil, err
	}
	return v, data[d.off:], nil
}

// DecodePayload parses a bare payload for the given tag, without the length
// prefix framing. For callers that read framing themselves, e.g. off a
// socket; the stream package is built on it.
func (c *Coder[V]) DecodePayload(tag Tag, payload []byte) (V, error) {
	d := decoder[V]{c: c, data: payload}
	return d.payload(tag, 0, len(payload), 0)
}

// value parses one complete frame starting at d.off, never reading at or
// past end. It leaves d.off on the first byte after the frame.
func (d *decoder[V]) value(end, depth int) (V, error) {
	var zero V
	if depth > d.c.maxDepth {
		return zero, ErrTooDeep
	}
	length, err := d.length(end)
	if err != nil {
		return zero, err
	}
	start := d.off
	if start+length+1 > end { // +1 for the trailing tag byte
		return zero, &SyntaxError{Offset: start, Msg: "length prefix exceeds buffer"}
	}
	tag := Tag(d.data[start+length])
	v, err := d.payload(tag, start, start+length, depth)
	if err != nil {
		return zero, err
	}
	// compound payloads walk the cursor; put it back on the frame boundary
	d.off = start + length + 1
	return v, nil
}

// length scans the decimal length prefix and its ':' separator. The prefix
// has no padding: a leading '0' must be the whole prefix. Prefixes over
// MaxLength are rejected here, before anything is indexed with them.
func (d *decoder[V]) length(end int) (int, error) {
	start := d.off
	if start >= end {
		return 0, &SyntaxError{Offset: start, Msg: "missing length prefix"}
	}
	c := d.data[start]
	if c < '0' || c > '9' {
		return 0, &SyntaxError{Offset: start, Msg: "missing length prefix"}
	}
	d.off++
	n := int(c - '0')
	if c != '0' {
		for d.off < end {
			c := d.data[d.off]
			if c < '0' || c > '9' {
				break
			}
			n = n*10 + int(c-'0')
			if n > d.c.maxLength {
				return 0, &SyntaxError{Offset: start, Msg: "absurdly large length prefix"}
			}
			d.off++
		}
	}
	if n > d.c.maxLength {
		return 0, &SyntaxError{Offset: start, Msg: "absurdly large length prefix"}
	}
	if d.off >= end || d.data[d.off] != ':' {
		return 0, &SyntaxError{Offset: d.off, Msg: "length prefix not followed by ':'"}
	}
	d.off++
	return n, nil
}

// payload dispatches on the tag byte and parses data[start:end].
func (d *decoder[V]) payload(tag Tag, start, end, depth int) (V, error) {
	var zero V
	p := d.data[start:end]
	switch tag {
	case TagString:
		return d.c.model.ParseString(p)
	case TagInteger:
		if d.c.legacyFloats && bytes.ContainsAny(p, ".eE") {
			return d.c.model.ParseFloat(p)
		}
		return d.c.model.ParseInteger(p)
	case TagFloat:
		return d.c.model.ParseFloat(p)
	case TagBool:
		// exactly "true" or "false"; no case folding, no 0/1 aliases
		if len(p) == 4 && string(p) == "true" {
			return d.c.model.Bool(true), nil
		}
		if len(p) == 5 && string(p) == "false" {
			return d.c.model.Bool(false), nil
		}
		return zero, &SyntaxError{Offset: start, Msg: "invalid boolean literal"}
	case TagNull:
		if len(p) != 0 {
			return zero, &SyntaxError{Offset: start, Msg: "invalid null literal"}
		}
		return d.c.model.Null(), nil
	case TagList:
		return d.list(start, end, depth)
	case TagDict:
		return d.dict(start, end, depth)
	}
	return zero, &SyntaxError{Offset: end, Msg: fmt.Sprintf("unknown type tag %q", byte(tag))}
}

// list parses frames out of the payload until it is exhausted exactly; a
// final item spilling past end fails inside value.
func (d *decoder[V]) list(start, end, depth int) (V, error) {
	var zero V
	list := d.c.model.NewList()
	d.off = start
	for d.off < end {
		item, err := d.value(end, depth+1)
		if err != nil {
			return zero, err
		}
		if list, err = d.c.model.Append(list, item); err != nil {
			return zero, err
		}
	}
	return list, nil
}

// dict is the same consumption loop as list, alternating key and value.
// Pairs land in encounter order; duplicate keys are the model's business.
func (d *decoder[V]) dict(start, end, depth int) (V, error) {
	var zero V
	dict := d.c.model.NewDict()
	d.off = start
	for d.off < end {
		key, err := d.value(end, depth+1)
		if err != nil {
			return zero, err
		}
		val, err := d.value(end, depth+1)
		if err != nil {
			return zero, err
		}
		if dict, err = d.c.model.Put(dict, key, val); err != nil {
			return zero, err
		}
	}
	return dict, nil
}
