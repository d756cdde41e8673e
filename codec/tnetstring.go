package codec

import (
	"github.com/unkn0wn-root/tnetstr"
	"github.com/unkn0wn-root/tnetstr/native"
)

// Tnetstring is a Codec over untyped Go values backed by the native model.
// The zero value uses the package defaults (pair-preserving dicts, default
// limits); set Coder to tune limits or dict shape.
type Tnetstring struct {
	Coder *tnetstr.Coder[any]
}

var _ Codec[any] = Tnetstring{}

func (c Tnetstring) coder() *tnetstr.Coder[any] {
	if c.Coder != nil {
		return c.Coder
	}
	return native.Default
}

func (c Tnetstring) Encode(v any) ([]byte, error) { return c.coder().Encode(v) }
func (c Tnetstring) Decode(b []byte) (any, error) { return c.coder().Decode(b) }
