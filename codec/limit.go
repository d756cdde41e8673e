package codec

import "fmt"

// LimitCodec wraps another codec to cap the accepted payload size at Decode
// time; Encode is forwarded to Inner unchanged. If MaxDecode <= 0, the limit
// is disabled.
//
// Typical use: reject oversized input from an untrusted source before the
// inner decoder ever sees it.
type LimitCodec[V any] struct {
	// Inner is the codec being wrapped. It must be set.
	Inner interface {
		Encode(V) ([]byte, error)
		Decode([]byte) (V, error)
	}
	// MaxDecode is the largest permitted payload, in bytes.
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
