// Package codec exposes the tnetstring coder behind a small byte-codec seam
// and provides sibling serializers (JSON, CBOR, Msgpack, protobuf Struct) so
// callers can transcode between formats or swap wire encodings behind one
// interface.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
